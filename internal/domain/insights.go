package domain

import "time"

// ChronotypeType represents the user's sleep chronotype classification.
// @Description Chronotype classification based on mid-sleep time.
type ChronotypeType string

const (
	ChronotypeEarlyBird    ChronotypeType = "early_bird"
	ChronotypeIntermediate ChronotypeType = "intermediate"
	ChronotypeNightOwl     ChronotypeType = "night_owl"
	ChronotypeUnknown      ChronotypeType = "unknown"
)

// ChronotypeResult contains the computed chronotype and supporting data.
// @Description Chronotype analysis result.
type ChronotypeResult struct {
	// Chronotype classification
	Chronotype ChronotypeType `json:"chronotype" example:"intermediate"`
	// Median primary-sleep midpoint in local time (HH:MM)
	MidSleepLocalTime string `json:"mid_sleep_local_time" example:"03:45"`
	// Minutes after local midnight for the median midpoint
	MidSleepMinutesAfterMidnight int `json:"mid_sleep_minutes_after_midnight" example:"225"`
	// Median absolute deviation of the midpoints, in minutes
	MidSleepSpreadMinutes int `json:"mid_sleep_spread_minutes" example:"25"`
	// Free-day (Friday and Saturday nights) minus work-day median midpoint, in minutes.
	// Absent unless both kinds of nights are present.
	SocialJetlagMinutes *int `json:"social_jetlag_minutes,omitempty" example:"55"`
	// Number of days in the analysis window
	WindowDays int `json:"window_days" example:"30"`
	// Number of scored nights used in calculation
	NightsUsed int `json:"nights_used" example:"28"`
}

// DescriptiveStats holds basic statistical measures.
// @Description Basic statistical measures for a metric.
type DescriptiveStats struct {
	Avg float64 `json:"avg" example:"72.4"`
	Std float64 `json:"std" example:"6.1"`
	Min float64 `json:"min" example:"58"`
	Max float64 `json:"max" example:"86"`
}

// TrendMetrics summarizes stored nightly scores over a window.
// @Description Score trends over a time window.
type TrendMetrics struct {
	// Window start
	From time.Time `json:"from" example:"2024-01-01T00:00:00Z"`
	// Window end
	To time.Time `json:"to" example:"2024-01-31T23:59:59Z"`
	// Number of scored nights in the window
	NightsCount int `json:"nights_count" example:"27"`
	// Sleep score statistics (0-100)
	Score DescriptiveStats `json:"score"`
	// Actual sleep statistics in hours
	SleepHours DescriptiveStats `json:"sleep_hours"`
	// Sleep efficiency statistics (0-1)
	Efficiency DescriptiveStats `json:"efficiency"`
	// Deep sleep share of actual sleep (0-1)
	DeepPct DescriptiveStats `json:"deep_pct"`
	// REM sleep share of actual sleep (0-1)
	REMPct DescriptiveStats `json:"rem_pct"`
	// Local midpoint statistics in minutes after midnight
	Midpoint DescriptiveStats `json:"midpoint"`
	// Nights per quality label
	QualityCounts map[QualityLabel]int `json:"quality_counts"`
	// Sum of nap readiness credits in the window
	ReadinessCredit int `json:"readiness_credit" example:"6"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated sleep insights.
type LLMInsightsOutput struct {
	// Summary of recent sleep (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep scores have been steady this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance"`
}

// InsightsContext is the context object sent to the LLM.
type InsightsContext struct {
	Chronotype ChronotypeResult      `json:"chronotype"`
	History    TrendMetrics          `json:"history"`
	Recent     TrendMetrics          `json:"recent"`
	LastNight  *NightlyScoreResponse `json:"last_night,omitempty"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Complete sleep insights response.
type InsightsResponse struct {
	Chronotype ChronotypeResult `json:"chronotype"`
	Trends     struct {
		History TrendMetrics `json:"history"`
		Recent  TrendMetrics `json:"recent"`
	} `json:"trends"`
	LastNight *NightlyScoreResponse `json:"last_night,omitempty"`
	Insights  LLMInsightsOutput     `json:"insights"`
	// OTEL trace ID for correlating with backend traces
	TraceID string `json:"trace_id,omitempty"`
}
