package domain

// QualityLabel buckets a 0-100 sleep score.
// @Description Sleep quality label derived from the score.
type QualityLabel string

const (
	QualityExcellent QualityLabel = "excellent"
	QualityGood      QualityLabel = "good"
	QualityFair      QualityLabel = "fair"
	QualityPoor      QualityLabel = "poor"
)

// ScoreBreakdown holds the six independently bounded score components.
// @Description Per-component contributions to the sleep score.
type ScoreBreakdown struct {
	// 0-25
	DurationComponent int `json:"duration_component" example:"25"`
	// 0-20
	EfficiencyComponent int `json:"efficiency_component" example:"20"`
	// 0-10
	DeepSleepComponent int `json:"deep_sleep_component" example:"10"`
	// 0-10
	REMSleepComponent int `json:"rem_sleep_component" example:"10"`
	// -10 to 10
	FragmentationComponent int `json:"fragmentation_component" example:"10"`
	// 0-5
	RegularityComponent int `json:"regularity_component" example:"3"`
}

// Total sums all components without clamping.
func (b ScoreBreakdown) Total() int {
	return b.DurationComponent + b.EfficiencyComponent + b.DeepSleepComponent +
		b.REMSleepComponent + b.FragmentationComponent + b.RegularityComponent
}

// StagePercentages reports stage shares of actual sleep and the efficiency fraction.
type StagePercentages struct {
	Deep       float64 `json:"deep" example:"0.19"`
	REM        float64 `json:"rem" example:"0.212"`
	Light      float64 `json:"light" example:"0.597"`
	Efficiency float64 `json:"efficiency" example:"0.983"`
}

// Fragmentation summarizes awakenings within an episode.
type Fragmentation struct {
	AwakeningsCount         int `json:"awakenings_count" example:"1"`
	LongestAwakeBoutMinutes int `json:"longest_awake_bout_minutes" example:"8"`
}

// SleepScoreResult is the scored outcome of one primary episode.
// @Description Nightly sleep score with component breakdown.
type SleepScoreResult struct {
	Score              int              `json:"score" example:"78"`
	Quality            QualityLabel     `json:"quality" example:"good"`
	ActualSleepMinutes int              `json:"actual_sleep_minutes" example:"472"`
	SleepHours         float64          `json:"sleep_hours" example:"7.87"`
	Breakdown          ScoreBreakdown   `json:"breakdown"`
	Percentages        StagePercentages `json:"percentages"`
	Fragmentation      Fragmentation    `json:"fragmentation"`
}

// NapScoreResult is the scored outcome of one nap episode.
// @Description Nap score and readiness credit.
type NapScoreResult struct {
	Score           int  `json:"score" example:"10"`
	Restorative     bool `json:"restorative" example:"true"`
	ReadinessCredit int  `json:"readiness_credit" example:"2"`
}
