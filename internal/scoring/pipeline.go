// Package scoring turns raw sleep-stage intervals into nightly sleep episodes
// and scores. Every function is pure: no I/O, no clock reads, no shared state.
package scoring

import (
	"sort"
	"time"

	"github.com/healthpilot/sleep-scorer/internal/domain"
)

// Night groups the episodes attributed to one night key.
type Night struct {
	Key      string
	Episodes []domain.SleepEpisode
}

// GroupByNight buckets episodes by NightKeyDate, ordered by key ascending.
// Episodes keep their relative order within a night.
func GroupByNight(episodes []domain.SleepEpisode) []Night {
	index := make(map[string]int)
	var nights []Night
	for _, ep := range episodes {
		i, ok := index[ep.NightKeyDate]
		if !ok {
			i = len(nights)
			index[ep.NightKeyDate] = i
			nights = append(nights, Night{Key: ep.NightKeyDate})
		}
		nights[i].Episodes = append(nights[i].Episodes, ep)
	}

	sort.SliceStable(nights, func(a, b int) bool {
		return nights[a].Key < nights[b].Key
	})
	return nights
}

// ScoreNight selects, validates and scores the primary episode of one night and
// scores its naps. history is read only.
func ScoreNight(night Night, history []time.Time, loc *time.Location) domain.NightResult {
	primary := SelectPrimary(night.Episodes, loc)
	typed := AssignTypes(night.Episodes, primary)

	result := domain.NightResult{
		NightKey: night.Key,
		Episodes: typed,
		Primary:  primary,
		Naps:     []domain.NapResult{},
	}

	if primary != nil {
		v := Validate(primary)
		result.Validation = &v
		if v.Valid {
			s := Score(primary, history, loc)
			result.Score = &s
		}
	}

	for i := range typed {
		ep := &typed[i]
		if ep.EpisodeType != domain.EpisodeTypeNap {
			continue
		}
		if !Validate(ep).Valid {
			continue
		}
		result.Naps = append(result.Naps, domain.NapResult{
			EpisodeID: ep.EpisodeID,
			Score:     ScoreNap(ep),
		})
	}

	return result
}

// ScoreNights runs the whole pipeline over a batch of raw segments. Each scored
// primary midpoint is appended to the regularity history of later nights in the
// batch; the caller's history slice is not modified.
func ScoreNights(raw []domain.RawSegment, loc *time.Location, history []time.Time) []domain.NightResult {
	if loc == nil {
		loc = time.UTC
	}

	episodes := BuildEpisodes(Cluster(Normalize(raw)), loc)
	nights := GroupByNight(episodes)

	midpoints := append([]time.Time(nil), history...)
	results := make([]domain.NightResult, 0, len(nights))
	for _, night := range nights {
		res := ScoreNight(night, midpoints, loc)
		if res.Score != nil {
			midpoints = append(midpoints, res.Primary.Midpoint)
		}
		results = append(results, res)
	}
	return results
}

// LoadLocation resolves an IANA timezone name, falling back to UTC.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
