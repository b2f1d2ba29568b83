package scoring

import (
	"math"
	"time"

	"github.com/healthpilot/sleep-scorer/internal/domain"
)

const (
	fragmentationBase  = 10
	fragmentationFloor = -10

	// regularityNoHistory is awarded when no previous midpoints exist.
	regularityNoHistory = 3
)

// Score computes the 0-100 sleep score for a primary episode. previousMidpoints
// feed the regularity component and are never modified. Validation is the
// caller's job (see Validate).
func Score(ep *domain.SleepEpisode, previousMidpoints []time.Time, loc *time.Location) domain.SleepScoreResult {
	if loc == nil {
		loc = time.UTC
	}

	sleepHours := float64(ep.ActualSleepMinutes) / 60
	deepPct := stageShare(ep.DeepMinutes, ep.ActualSleepMinutes)
	remPct := stageShare(ep.REMMinutes, ep.ActualSleepMinutes)
	lightPct := stageShare(ep.LightMinutes, ep.ActualSleepMinutes)

	breakdown := domain.ScoreBreakdown{
		DurationComponent:      DurationComponent(sleepHours),
		EfficiencyComponent:    EfficiencyComponent(ep.SleepEfficiency),
		DeepSleepComponent:     DeepSleepComponent(deepPct),
		REMSleepComponent:      REMSleepComponent(remPct),
		FragmentationComponent: FragmentationComponent(ep.AwakeningsCount, ep.LongestAwakeBoutMinutes),
		RegularityComponent:    RegularityComponent(ep.Midpoint, previousMidpoints, loc),
	}

	total := math.Max(0, math.Min(100, float64(breakdown.Total())))
	score := int(math.Round(total))

	return domain.SleepScoreResult{
		Score:              score,
		Quality:            QualityFor(score),
		ActualSleepMinutes: ep.ActualSleepMinutes,
		SleepHours:         round2(sleepHours),
		Breakdown:          breakdown,
		Percentages: domain.StagePercentages{
			Deep:       round3(deepPct),
			REM:        round3(remPct),
			Light:      round3(lightPct),
			Efficiency: round3(ep.SleepEfficiency),
		},
		Fragmentation: domain.Fragmentation{
			AwakeningsCount:         ep.AwakeningsCount,
			LongestAwakeBoutMinutes: ep.LongestAwakeBoutMinutes,
		},
	}
}

// DurationComponent scores actual sleep hours (0-25). Bands are closed on the
// side nearest the 7-9h optimum.
func DurationComponent(hours float64) int {
	switch {
	case hours >= 7 && hours <= 9:
		return 25
	case (hours >= 6.5 && hours < 7) || (hours > 9 && hours <= 9.5):
		return 18
	case (hours >= 6 && hours < 6.5) || (hours > 9.5 && hours <= 10):
		return 10
	case (hours >= 5 && hours < 6) || (hours > 10 && hours <= 11):
		return 2
	default:
		return 0
	}
}

// EfficiencyComponent scores sleep efficiency (0-20).
func EfficiencyComponent(efficiency float64) int {
	switch {
	case efficiency >= 0.95:
		return 20
	case efficiency >= 0.90:
		return 16
	case efficiency >= 0.85:
		return 10
	case efficiency >= 0.80:
		return 4
	default:
		return 0
	}
}

// DeepSleepComponent scores the deep share of actual sleep (0-10).
func DeepSleepComponent(pct float64) int {
	switch {
	case pct >= 0.15 && pct <= 0.25:
		return 10
	case (pct >= 0.10 && pct < 0.15) || (pct > 0.25 && pct <= 0.30):
		return 6
	case pct < 0.10:
		return 2
	default:
		return 0
	}
}

// REMSleepComponent scores the REM share of actual sleep (0-10).
func REMSleepComponent(pct float64) int {
	switch {
	case pct >= 0.18 && pct <= 0.28:
		return 10
	case (pct >= 0.15 && pct < 0.18) || (pct > 0.28 && pct <= 0.32):
		return 6
	case pct < 0.15:
		return 2
	default:
		return 0
	}
}

// FragmentationComponent starts at 10 and deducts for awakening count and the
// longest awake bout, never dropping below -10.
func FragmentationComponent(awakenings, longestBoutMinutes int) int {
	score := fragmentationBase

	switch {
	case awakenings >= 5:
		score -= 6
	case awakenings >= 3:
		score -= 3
	}

	switch {
	case longestBoutMinutes >= 30:
		score -= 6
	case longestBoutMinutes >= 15:
		score -= 3
	}

	if score < fragmentationFloor {
		score = fragmentationFloor
	}
	return score
}

// RegularityComponent scores how close midpoint falls to the average of
// previous midpoints, by local time of day (0-5).
func RegularityComponent(midpoint time.Time, previous []time.Time, loc *time.Location) int {
	if len(previous) == 0 {
		return regularityNoHistory
	}

	variance := MidpointVariance(midpoint, previous, loc)
	switch {
	case variance <= 30:
		return 5
	case variance <= 60:
		return 3
	case variance <= 120:
		return 1
	default:
		return 0
	}
}

// MidpointVariance is the circular distance in minutes between midpoint and the
// mean of previous, both as minutes since local midnight.
func MidpointVariance(midpoint time.Time, previous []time.Time, loc *time.Location) float64 {
	if loc == nil {
		loc = time.UTC
	}
	if len(previous) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range previous {
		sum += MinutesSinceMidnight(p, loc)
	}
	avg := sum / float64(len(previous))

	diff := math.Abs(MinutesSinceMidnight(midpoint, loc) - avg)
	if diff > minutesPerDay/2 {
		diff = minutesPerDay - diff
	}
	return diff
}

// MinutesSinceMidnight returns the local wall-clock time of t in minutes.
func MinutesSinceMidnight(t time.Time, loc *time.Location) float64 {
	local := t.In(loc)
	return float64(local.Hour()*60+local.Minute()) + float64(local.Second())/60
}

// QualityFor labels a final score.
func QualityFor(score int) domain.QualityLabel {
	switch {
	case score >= 80:
		return domain.QualityExcellent
	case score >= 60:
		return domain.QualityGood
	case score >= 40:
		return domain.QualityFair
	default:
		return domain.QualityPoor
	}
}

func stageShare(minutes, actualSleep int) float64 {
	if actualSleep <= 0 {
		return 0
	}
	return float64(minutes) / float64(actualSleep)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
