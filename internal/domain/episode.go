package domain

import (
	"time"

	"github.com/google/uuid"
)

// EpisodeType classifies an episode within its night.
// @Description primary for the main overnight sleep, nap for short daytime sleep.
type EpisodeType string

const (
	EpisodeTypePrimary EpisodeType = "primary"
	EpisodeTypeNap     EpisodeType = "nap"
	// EpisodeTypeUnclassified marks a non-primary episode outside nap duration bounds.
	EpisodeTypeUnclassified EpisodeType = "unclassified"
)

// EpisodeFlag is a non-fatal data-quality marker attached to an episode.
type EpisodeFlag string

const (
	FlagDataInconsistent EpisodeFlag = "data_inconsistent"
	FlagOutlierDuration  EpisodeFlag = "outlier_duration"
)

// SleepEpisode is a contiguous run of processed segments with aggregated statistics.
// @Description Sleep episode built from contiguous stage segments.
type SleepEpisode struct {
	EpisodeID               uuid.UUID          `json:"episode_id"`
	EpisodeType             EpisodeType        `json:"episode_type" example:"primary"`
	Start                   time.Time          `json:"start"`
	End                     time.Time          `json:"end"`
	InBedMinutes            int                `json:"in_bed_minutes" example:"480"`
	AwakeMinutes            int                `json:"awake_minutes" example:"8"`
	LightMinutes            int                `json:"light_minutes" example:"282"`
	DeepMinutes             int                `json:"deep_minutes" example:"90"`
	REMMinutes              int                `json:"rem_minutes" example:"100"`
	ActualSleepMinutes      int                `json:"actual_sleep_minutes" example:"472"`
	SleepEfficiency         float64            `json:"sleep_efficiency" example:"0.983"`
	AwakeningsCount         int                `json:"awakenings_count" example:"1"`
	LongestAwakeBoutMinutes int                `json:"longest_awake_bout_minutes" example:"8"`
	Midpoint                time.Time          `json:"midpoint"`
	NightKeyDate            string             `json:"night_key_date" example:"2024-01-15"`
	Segments                []ProcessedSegment `json:"segments"`
	Flags                   []EpisodeFlag      `json:"flags"`
}

// HasFlag reports whether the episode carries flag.
func (e *SleepEpisode) HasFlag(flag EpisodeFlag) bool {
	for _, f := range e.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// StageSumMinutes is the total of the four per-stage minute counts.
func (e *SleepEpisode) StageSumMinutes() int {
	return e.AwakeMinutes + e.LightMinutes + e.DeepMinutes + e.REMMinutes
}

// ValidationResult reports whether an episode may be scored.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
