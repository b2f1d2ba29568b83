package scoring

import (
	"fmt"

	"github.com/healthpilot/sleep-scorer/internal/domain"
)

// Validate decides whether an episode may be scored.
func Validate(ep *domain.SleepEpisode) domain.ValidationResult {
	if ep.HasFlag(domain.FlagDataInconsistent) {
		return domain.ValidationResult{
			Reason: fmt.Sprintf("stage totals (%d min) differ from time in bed (%d min) by more than %d min",
				ep.StageSumMinutes(), ep.InBedMinutes, StageSumToleranceMinutes),
		}
	}
	if ep.HasFlag(domain.FlagOutlierDuration) {
		return domain.ValidationResult{
			Reason: fmt.Sprintf("time in bed (%d min) exceeds %d min", ep.InBedMinutes, PrimaryMaxMinutes),
		}
	}
	if ep.EpisodeType == domain.EpisodeTypePrimary && ep.InBedMinutes < PrimaryMinMinutes {
		return domain.ValidationResult{
			Reason: fmt.Sprintf("primary sleep (%d min) is shorter than %d min", ep.InBedMinutes, PrimaryMinMinutes),
		}
	}
	return domain.ValidationResult{Valid: true}
}
