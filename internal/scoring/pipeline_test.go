package scoring

import (
	"testing"
	"time"

	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByNight(t *testing.T) {
	a := episodeAt(time.Date(2024, 1, 16, 23, 0, 0, 0, time.UTC), 420)
	b := episodeAt(time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC), 420)
	c := episodeAt(time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC), 30)

	nights := GroupByNight([]domain.SleepEpisode{a, b, c})

	require.Len(t, nights, 2)
	assert.Equal(t, "2024-01-15", nights[0].Key)
	assert.Equal(t, []domain.SleepEpisode{b, c}, nights[0].Episodes)
	assert.Equal(t, "2024-01-16", nights[1].Key)
	assert.Equal(t, []domain.SleepEpisode{a}, nights[1].Episodes)
}

func TestScoreNights_CleanNightWithNap(t *testing.T) {
	nap := contiguous(time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC),
		stageSpan{"asleep_core", 13},
		stageSpan{"asleep_deep", 12},
	)
	raw := append(nap, cleanNight()...)

	got := ScoreNights(raw, time.UTC, nil)

	require.Len(t, got, 1)
	night := got[0]
	assert.Equal(t, "2024-01-15", night.NightKey)
	require.NotNil(t, night.Primary)
	require.NotNil(t, night.Validation)
	assert.True(t, night.Validation.Valid)
	require.NotNil(t, night.Score)
	assert.Equal(t, 78, night.Score.Score)

	require.Len(t, night.Episodes, 2)
	assert.Equal(t, domain.EpisodeTypeNap, night.Episodes[0].EpisodeType)
	assert.Equal(t, domain.EpisodeTypePrimary, night.Episodes[1].EpisodeType)

	require.Len(t, night.Naps, 1)
	assert.Equal(t, night.Episodes[0].EpisodeID, night.Naps[0].EpisodeID)
	assert.Equal(t, 10, night.Naps[0].Score.Score)
	assert.True(t, night.Naps[0].Score.Restorative)
}

func TestScoreNights_RegularityCarriesAcrossBatch(t *testing.T) {
	second := contiguous(time.Date(2024, 1, 16, 23, 10, 0, 0, time.UTC),
		stageSpan{"asleep_core", 200},
		stageSpan{"asleep_deep", 90},
		stageSpan{"asleep_rem", 100},
		stageSpan{"asleep_core", 90},
	)
	raw := append(cleanNight(), second...)
	history := []time.Time{}

	got := ScoreNights(raw, time.UTC, history)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].Score)
	require.NotNil(t, got[1].Score)
	assert.Equal(t, 3, got[0].Score.Breakdown.RegularityComponent)
	assert.Equal(t, 5, got[1].Score.Breakdown.RegularityComponent)
	assert.Empty(t, history)
}

func TestScoreNights_InvalidPrimaryNotScored(t *testing.T) {
	start := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)
	raw := []domain.RawSegment{
		{StartTime: start, EndTime: start.Add(3 * time.Hour), StageLabel: "asleep_core"},
		{StartTime: start.Add(3*time.Hour + 60*time.Minute), EndTime: start.Add(8 * time.Hour), StageLabel: "asleep_core"},
	}

	got := ScoreNights(raw, time.UTC, nil)

	require.Len(t, got, 1)
	require.NotNil(t, got[0].Primary)
	assert.True(t, got[0].Primary.HasFlag(domain.FlagDataInconsistent))
	require.NotNil(t, got[0].Validation)
	assert.False(t, got[0].Validation.Valid)
	assert.Nil(t, got[0].Score)
}

func TestScoreNights_NoEligiblePrimary(t *testing.T) {
	raw := append(
		contiguous(time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC), stageSpan{"asleep_core", 200}),
		contiguous(time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC), stageSpan{"asleep_core", 120})...,
	)

	got := ScoreNights(raw, time.UTC, nil)

	require.Len(t, got, 1)
	assert.Nil(t, got[0].Primary)
	assert.Nil(t, got[0].Validation)
	assert.Nil(t, got[0].Score)
	require.Len(t, got[0].Naps, 1)
	assert.Equal(t, domain.EpisodeTypeUnclassified, got[0].Episodes[0].EpisodeType)
	assert.Equal(t, domain.EpisodeTypeNap, got[0].Episodes[1].EpisodeType)
}

func TestScoreNights_Deterministic(t *testing.T) {
	prague := mustLoad("Europe/Prague")
	raw := append(cleanNight(), fragmentedNight()...)

	assert.Equal(t, ScoreNights(raw, prague, nil), ScoreNights(raw, prague, nil))
}

func TestScoreNights_Empty(t *testing.T) {
	assert.Empty(t, ScoreNights(nil, nil, nil))
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation(""))
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, "Europe/Prague", LoadLocation("Europe/Prague").String())
}
