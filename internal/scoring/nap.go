package scoring

import "github.com/healthpilot/sleep-scorer/internal/domain"

const (
	restorativeStageMinutes = 10
	napReadinessCredit      = 2
)

// ScoreNap scores a nap episode on a 0-10 scale by in-bed duration. Naps with at
// least 10 minutes of deep or REM sleep are restorative and earn readiness credit.
func ScoreNap(ep *domain.SleepEpisode) domain.NapScoreResult {
	res := domain.NapScoreResult{
		Score:       napDurationScore(ep.InBedMinutes),
		Restorative: ep.DeepMinutes >= restorativeStageMinutes || ep.REMMinutes >= restorativeStageMinutes,
	}
	if res.Restorative {
		res.ReadinessCredit = napReadinessCredit
	}
	return res
}

func napDurationScore(minutes int) int {
	switch {
	case minutes >= 20 && minutes <= 30:
		return 10
	case minutes >= 31 && minutes <= 60:
		return 6
	case minutes >= 10 && minutes <= 19:
		return 4
	case minutes > 60:
		return 2
	default:
		return 0
	}
}
