package domain

import "time"

// Stage is the normalized sleep stage of a processed segment.
// @Description Normalized sleep stage.
type Stage string

const (
	StageAwake Stage = "awake"
	StageLight Stage = "light"
	StageDeep  Stage = "deep"
	StageREM   Stage = "rem"
)

// RawSegment is a vendor-reported sleep-stage interval as received from ingestion.
// @Description Raw sleep-stage interval reported by a wearable or health platform.
type RawSegment struct {
	// Interval start (RFC3339)
	StartTime time.Time `json:"start_time" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Interval end (RFC3339)
	EndTime time.Time `json:"end_time" validate:"required,gtfield=StartTime" example:"2024-01-15T23:42:00Z"`
	// Vendor stage label, e.g. asleep_rem, asleep_core, in_bed, awake
	StageLabel string `json:"stage" validate:"required,max=64" example:"asleep_core"`
	// Optional source device or app identifier
	SourceID string `json:"source_id,omitempty" validate:"omitempty,max=255" example:"apple_watch"`
}

// ProcessedSegment is a classified interval ready for clustering.
type ProcessedSegment struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Stage           Stage     `json:"stage"`
}
