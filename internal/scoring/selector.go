package scoring

import (
	"time"

	"github.com/healthpilot/sleep-scorer/internal/domain"
)

// SelectPrimary picks the main overnight episode among the episodes of one
// night key. It returns a copy typed primary, or nil when no episode qualifies.
//
// Eligible episodes last PrimaryMinMinutes..PrimaryMaxMinutes and have a local
// midpoint inside the overnight window; the longest wins. Without any eligible
// episode, the longest episode of at least PrimaryMinMinutes starting in the
// early-afternoon fallback window is used.
func SelectPrimary(episodes []domain.SleepEpisode, loc *time.Location) *domain.SleepEpisode {
	if loc == nil {
		loc = time.UTC
	}

	var best *domain.SleepEpisode
	for i := range episodes {
		ep := &episodes[i]
		if ep.InBedMinutes < PrimaryMinMinutes || ep.InBedMinutes > PrimaryMaxMinutes {
			continue
		}
		if !inOvernightWindow(ep.Midpoint.In(loc).Hour()) {
			continue
		}
		if best == nil || ep.InBedMinutes > best.InBedMinutes {
			best = ep
		}
	}

	if best == nil {
		for i := range episodes {
			ep := &episodes[i]
			if ep.InBedMinutes < PrimaryMinMinutes {
				continue
			}
			hour := ep.Start.In(loc).Hour()
			if hour < FallbackStartHour || hour >= FallbackEndHour {
				continue
			}
			if best == nil || ep.InBedMinutes > best.InBedMinutes {
				best = ep
			}
		}
	}

	if best == nil {
		return nil
	}

	primary := *best
	primary.EpisodeType = domain.EpisodeTypePrimary
	return &primary
}

func inOvernightWindow(hour int) bool {
	return hour >= OvernightStartHour || hour <= OvernightEndHour
}

// AssignTypes returns copies of episodes with final types: the primary keeps
// primary, others become nap within nap bounds or unclassified otherwise.
// A nil primary leaves no episode typed primary.
func AssignTypes(episodes []domain.SleepEpisode, primary *domain.SleepEpisode) []domain.SleepEpisode {
	out := make([]domain.SleepEpisode, len(episodes))
	for i, ep := range episodes {
		switch {
		case primary != nil && ep.EpisodeID == primary.EpisodeID:
			ep.EpisodeType = domain.EpisodeTypePrimary
		case ep.InBedMinutes >= NapMinMinutes && ep.InBedMinutes <= NapMaxMinutes:
			ep.EpisodeType = domain.EpisodeTypeNap
		default:
			ep.EpisodeType = domain.EpisodeTypeUnclassified
		}
		out[i] = ep
	}
	return out
}
