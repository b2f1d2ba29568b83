package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NightlyScore is the persisted result for one user-night with a scored primary episode.
type NightlyScore struct {
	ID                      uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                  uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_nightly_scores_user_night,priority:1" json:"user_id"`
	NightKey                string       `gorm:"type:varchar(10);not null;uniqueIndex:idx_nightly_scores_user_night,priority:2,sort:desc" json:"night_key"`
	EpisodeID               uuid.UUID    `gorm:"type:uuid;not null" json:"episode_id"`
	StartAt                 time.Time    `gorm:"not null" json:"start_at"`
	EndAt                   time.Time    `gorm:"not null" json:"end_at"`
	Midpoint                time.Time    `gorm:"not null;index" json:"midpoint"`
	LocalTimezone           string       `gorm:"type:varchar(64);not null;default:'UTC'" json:"local_timezone"`
	InBedMinutes            int          `gorm:"not null" json:"in_bed_minutes"`
	ActualSleepMinutes      int          `gorm:"not null" json:"actual_sleep_minutes"`
	AwakeMinutes            int          `gorm:"not null" json:"awake_minutes"`
	LightMinutes            int          `gorm:"not null" json:"light_minutes"`
	DeepMinutes             int          `gorm:"not null" json:"deep_minutes"`
	REMMinutes              int          `gorm:"column:rem_minutes;not null" json:"rem_minutes"`
	SleepEfficiency         float64      `gorm:"not null" json:"sleep_efficiency"`
	AwakeningsCount         int          `gorm:"not null" json:"awakenings_count"`
	LongestAwakeBoutMinutes int          `gorm:"not null" json:"longest_awake_bout_minutes"`
	Score                   int          `gorm:"type:smallint;not null" json:"score"`
	Quality                 QualityLabel `gorm:"type:varchar(16);not null" json:"quality"`
	DurationComponent       int          `gorm:"type:smallint;not null" json:"duration_component"`
	EfficiencyComponent     int          `gorm:"type:smallint;not null" json:"efficiency_component"`
	DeepSleepComponent      int          `gorm:"type:smallint;not null" json:"deep_sleep_component"`
	REMSleepComponent       int          `gorm:"column:rem_sleep_component;type:smallint;not null" json:"rem_sleep_component"`
	FragmentationComponent  int          `gorm:"type:smallint;not null" json:"fragmentation_component"`
	RegularityComponent     int          `gorm:"type:smallint;not null" json:"regularity_component"`
	NapCount                int          `gorm:"not null;default:0" json:"nap_count"`
	ReadinessCredit         int          `gorm:"not null;default:0" json:"readiness_credit"`
	CreatedAt               time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (NightlyScore) TableName() string {
	return "nightly_scores"
}

// NewNightlyScore flattens a scored primary episode into its persisted form.
func NewNightlyScore(userID uuid.UUID, timezone string, ep *SleepEpisode, res *SleepScoreResult, naps []NapScoreResult) *NightlyScore {
	ns := &NightlyScore{
		UserID:                  userID,
		NightKey:                ep.NightKeyDate,
		EpisodeID:               ep.EpisodeID,
		StartAt:                 ep.Start.UTC(),
		EndAt:                   ep.End.UTC(),
		Midpoint:                ep.Midpoint.UTC(),
		LocalTimezone:           timezone,
		InBedMinutes:            ep.InBedMinutes,
		ActualSleepMinutes:      ep.ActualSleepMinutes,
		AwakeMinutes:            ep.AwakeMinutes,
		LightMinutes:            ep.LightMinutes,
		DeepMinutes:             ep.DeepMinutes,
		REMMinutes:              ep.REMMinutes,
		SleepEfficiency:         ep.SleepEfficiency,
		AwakeningsCount:         ep.AwakeningsCount,
		LongestAwakeBoutMinutes: ep.LongestAwakeBoutMinutes,
		Score:                   res.Score,
		Quality:                 res.Quality,
		DurationComponent:       res.Breakdown.DurationComponent,
		EfficiencyComponent:     res.Breakdown.EfficiencyComponent,
		DeepSleepComponent:      res.Breakdown.DeepSleepComponent,
		REMSleepComponent:       res.Breakdown.REMSleepComponent,
		FragmentationComponent:  res.Breakdown.FragmentationComponent,
		RegularityComponent:     res.Breakdown.RegularityComponent,
		NapCount:                len(naps),
	}
	for _, n := range naps {
		ns.ReadinessCredit += n.ReadinessCredit
	}
	return ns
}

// NightlyScoreResponse is the API view of a stored nightly score.
// @Description Stored nightly sleep score.
type NightlyScoreResponse struct {
	ID                 uuid.UUID      `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID             uuid.UUID      `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	NightKey           string         `json:"night_key" example:"2024-01-15"`
	EpisodeID          uuid.UUID      `json:"episode_id"`
	Score              int            `json:"score" example:"78"`
	Quality            QualityLabel   `json:"quality" example:"good"`
	SleepHours         float64        `json:"sleep_hours" example:"7.87"`
	InBedMinutes       int            `json:"in_bed_minutes" example:"480"`
	ActualSleepMinutes int            `json:"actual_sleep_minutes" example:"472"`
	Breakdown          ScoreBreakdown `json:"breakdown"`
	Fragmentation      Fragmentation  `json:"fragmentation"`
	SleepEfficiency    float64        `json:"sleep_efficiency" example:"0.983"`
	ReadinessCredit    int            `json:"readiness_credit" example:"2"`
	LocalTimezone      string         `json:"local_timezone" example:"Europe/Prague"`
	StartAt            time.Time      `json:"start_at" example:"2024-01-15T22:00:00Z"`
	EndAt              time.Time      `json:"end_at" example:"2024-01-16T06:00:00Z"`
	LocalStartAt       time.Time      `json:"local_start_at" example:"2024-01-15T23:00:00+01:00"`
	LocalEndAt         time.Time      `json:"local_end_at" example:"2024-01-16T07:00:00+01:00"`
	LocalMidpoint      time.Time      `json:"local_midpoint" example:"2024-01-16T03:00:00+01:00"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (n *NightlyScore) ToResponse() NightlyScoreResponse {
	loc := time.UTC
	if n.LocalTimezone != "" {
		if l, err := time.LoadLocation(n.LocalTimezone); err == nil {
			loc = l
		}
	}

	return NightlyScoreResponse{
		ID:                 n.ID,
		UserID:             n.UserID,
		NightKey:           n.NightKey,
		EpisodeID:          n.EpisodeID,
		Score:              n.Score,
		Quality:            n.Quality,
		SleepHours:         math.Round(float64(n.ActualSleepMinutes)/60*100) / 100,
		InBedMinutes:       n.InBedMinutes,
		ActualSleepMinutes: n.ActualSleepMinutes,
		Breakdown: ScoreBreakdown{
			DurationComponent:      n.DurationComponent,
			EfficiencyComponent:    n.EfficiencyComponent,
			DeepSleepComponent:     n.DeepSleepComponent,
			REMSleepComponent:      n.REMSleepComponent,
			FragmentationComponent: n.FragmentationComponent,
			RegularityComponent:    n.RegularityComponent,
		},
		Fragmentation: Fragmentation{
			AwakeningsCount:         n.AwakeningsCount,
			LongestAwakeBoutMinutes: n.LongestAwakeBoutMinutes,
		},
		SleepEfficiency: n.SleepEfficiency,
		ReadinessCredit: n.ReadinessCredit,
		LocalTimezone:   n.LocalTimezone,
		StartAt:         n.StartAt,
		EndAt:           n.EndAt,
		LocalStartAt:    n.StartAt.In(loc),
		LocalEndAt:      n.EndAt.In(loc),
		LocalMidpoint:   n.Midpoint.In(loc),
		UpdatedAt:       n.UpdatedAt,
	}
}

// ComputeScoresRequest is the request body for scoring a batch of raw segments.
// @Description Raw sleep-stage segments for one or more nights.
type ComputeScoresRequest struct {
	// Raw stage intervals (already deduplicated by the ingestion layer)
	Segments []RawSegment `json:"segments" validate:"required,min=1,max=5000,dive"`
	// Optional IANA timezone overriding the user's home timezone
	LocalTimezone *string `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// NapResult pairs a nap episode with its score.
type NapResult struct {
	EpisodeID uuid.UUID      `json:"episode_id"`
	Score     NapScoreResult `json:"score"`
}

// NightResult is the pipeline outcome for one night key.
// @Description Scoring outcome for one night.
type NightResult struct {
	NightKey   string            `json:"night_key" example:"2024-01-15"`
	Episodes   []SleepEpisode    `json:"episodes"`
	Primary    *SleepEpisode     `json:"primary,omitempty"`
	Validation *ValidationResult `json:"validation,omitempty"`
	Score      *SleepScoreResult `json:"score,omitempty"`
	Naps       []NapResult       `json:"naps"`
}

// ComputeScoresResponse is the response body for a scoring request.
// @Description Per-night scoring results.
type ComputeScoresResponse struct {
	UserID        uuid.UUID     `json:"user_id"`
	LocalTimezone string        `json:"local_timezone" example:"Europe/Prague"`
	Nights        []NightResult `json:"nights"`
}

// NightlyScoreListResponse is the response body for listing stored scores.
// @Description Paginated list of nightly scores.
type NightlyScoreListResponse struct {
	Data       []NightlyScoreResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// NightlyScoreFilter contains filter parameters for listing nightly scores.
// From and To are inclusive night keys (YYYY-MM-DD).
type NightlyScoreFilter struct {
	From   string `json:"from" validate:"omitempty,nightkey"`
	To     string `json:"to" validate:"omitempty,nightkey"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Cursor string `json:"cursor"`
}

// IsNightKey reports whether s is a YYYY-MM-DD calendar date.
func IsNightKey(s string) bool {
	if len(s) != 10 || strings.Count(s, "-") != 2 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
