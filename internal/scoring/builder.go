package scoring

import (
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
)

const nightKeyLayout = "2006-01-02"

// episodeNamespace seeds deterministic episode ids.
var episodeNamespace = uuid.MustParse("5b0f3c8e-7d1a-4e7b-9a4c-2f61d8e0a9b3")

// BuildEpisode aggregates one cluster into a SleepEpisode. The cluster must be
// non-empty and ordered by start.
func BuildEpisode(cluster []domain.ProcessedSegment, loc *time.Location) domain.SleepEpisode {
	if loc == nil {
		loc = time.UTC
	}

	start := cluster[0].Start
	end := cluster[len(cluster)-1].End

	ep := domain.SleepEpisode{
		EpisodeID:    EpisodeID(start, end),
		Start:        start,
		End:          end,
		InBedMinutes: roundMinutes(end.Sub(start)),
		Midpoint:     start.Add(end.Sub(start) / 2),
		NightKeyDate: NightKey(start, loc),
		Segments:     append([]domain.ProcessedSegment(nil), cluster...),
		Flags:        []domain.EpisodeFlag{},
	}

	for _, seg := range cluster {
		switch seg.Stage {
		case domain.StageAwake:
			ep.AwakeMinutes += seg.DurationMinutes
			if seg.DurationMinutes >= MinAwakeningMinutes {
				ep.AwakeningsCount++
				if seg.DurationMinutes > ep.LongestAwakeBoutMinutes {
					ep.LongestAwakeBoutMinutes = seg.DurationMinutes
				}
			}
		case domain.StageDeep:
			ep.DeepMinutes += seg.DurationMinutes
		case domain.StageREM:
			ep.REMMinutes += seg.DurationMinutes
		default:
			ep.LightMinutes += seg.DurationMinutes
		}
	}

	ep.ActualSleepMinutes = ep.InBedMinutes - ep.AwakeMinutes
	if ep.InBedMinutes > 0 {
		ep.SleepEfficiency = float64(ep.ActualSleepMinutes) / float64(ep.InBedMinutes)
	}

	ep.EpisodeType = domain.EpisodeTypePrimary
	if ep.InBedMinutes >= NapMinMinutes && ep.InBedMinutes <= NapMaxMinutes {
		ep.EpisodeType = domain.EpisodeTypeNap
	}

	if drift := ep.StageSumMinutes() - ep.InBedMinutes; drift > StageSumToleranceMinutes || drift < -StageSumToleranceMinutes {
		ep.Flags = append(ep.Flags, domain.FlagDataInconsistent)
	}
	if ep.InBedMinutes > PrimaryMaxMinutes {
		ep.Flags = append(ep.Flags, domain.FlagOutlierDuration)
	}

	return ep
}

// BuildEpisodes builds every cluster in order.
func BuildEpisodes(clusters [][]domain.ProcessedSegment, loc *time.Location) []domain.SleepEpisode {
	episodes := make([]domain.SleepEpisode, 0, len(clusters))
	for _, c := range clusters {
		if len(c) == 0 {
			continue
		}
		episodes = append(episodes, BuildEpisode(c, loc))
	}
	return episodes
}

// NightKey attributes an episode start to a calendar night in loc. Starts at or
// after 15:00 local belong to that date; earlier starts belong to the date 12
// hours before, so an 02:00 start counts toward the previous evening.
func NightKey(start time.Time, loc *time.Location) string {
	local := start.In(loc)
	if local.Hour() >= NightKeyCutoffHour {
		return local.Format(nightKeyLayout)
	}
	return start.Add(-12 * time.Hour).In(loc).Format(nightKeyLayout)
}

// EpisodeID derives a stable id from the episode bounds.
func EpisodeID(start, end time.Time) uuid.UUID {
	name := start.UTC().Format(time.RFC3339Nano) + "/" + end.UTC().Format(time.RFC3339Nano)
	return uuid.NewSHA1(episodeNamespace, []byte(name))
}
