package scoring

import (
	"testing"
	"time"

	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEpisode_CleanNight(t *testing.T) {
	ep := buildOne(cleanNight(), time.UTC)

	assert.Equal(t, 480, ep.InBedMinutes)
	assert.Equal(t, 8, ep.AwakeMinutes)
	assert.Equal(t, 282, ep.LightMinutes)
	assert.Equal(t, 90, ep.DeepMinutes)
	assert.Equal(t, 100, ep.REMMinutes)
	assert.Equal(t, 472, ep.ActualSleepMinutes)
	assert.InDelta(t, 472.0/480.0, ep.SleepEfficiency, 1e-9)
	assert.Equal(t, 1, ep.AwakeningsCount)
	assert.Equal(t, 8, ep.LongestAwakeBoutMinutes)
	assert.Equal(t, time.Date(2024, 1, 16, 3, 0, 0, 0, time.UTC), ep.Midpoint)
	assert.Equal(t, "2024-01-15", ep.NightKeyDate)
	assert.Equal(t, domain.EpisodeTypePrimary, ep.EpisodeType)
	assert.Empty(t, ep.Flags)
	assert.Len(t, ep.Segments, 8)
}

func TestBuildEpisode_ShortAwakeNotCounted(t *testing.T) {
	raw := contiguous(time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
		stageSpan{"asleep_core", 100},
		stageSpan{"awake", 1},
		stageSpan{"asleep_core", 100},
		stageSpan{"awake", 2},
		stageSpan{"asleep_core", 100},
		stageSpan{"awake", 20},
		stageSpan{"asleep_core", 100},
	)

	ep := buildOne(raw, time.UTC)

	assert.Equal(t, 23, ep.AwakeMinutes)
	assert.Equal(t, 2, ep.AwakeningsCount)
	assert.Equal(t, 20, ep.LongestAwakeBoutMinutes)
}

func TestBuildEpisode_ProvisionalType(t *testing.T) {
	base := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		minutes int
		want    domain.EpisodeType
	}{
		{9, domain.EpisodeTypePrimary},
		{10, domain.EpisodeTypeNap},
		{180, domain.EpisodeTypeNap},
		{181, domain.EpisodeTypePrimary},
	}

	for _, tt := range tests {
		ep := BuildEpisode([]domain.ProcessedSegment{processed(base, tt.minutes, domain.StageLight)}, time.UTC)
		assert.Equal(t, tt.want, ep.EpisodeType, "minutes=%d", tt.minutes)
	}
}

func TestBuildEpisode_Flags(t *testing.T) {
	base := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)

	t.Run("stage sum drift beyond tolerance", func(t *testing.T) {
		first := processed(base, 200, domain.StageLight)
		second := processed(first.End.Add(16*time.Minute), 200, domain.StageDeep)

		ep := BuildEpisode([]domain.ProcessedSegment{first, second}, time.UTC)

		assert.Equal(t, 416, ep.InBedMinutes)
		assert.True(t, ep.HasFlag(domain.FlagDataInconsistent))
		assert.False(t, ep.HasFlag(domain.FlagOutlierDuration))
	})

	t.Run("drift at tolerance is accepted", func(t *testing.T) {
		first := processed(base, 200, domain.StageLight)
		second := processed(first.End.Add(15*time.Minute), 200, domain.StageDeep)

		ep := BuildEpisode([]domain.ProcessedSegment{first, second}, time.UTC)

		assert.False(t, ep.HasFlag(domain.FlagDataInconsistent))
	})

	t.Run("overlapping stages exceed in-bed time", func(t *testing.T) {
		first := processed(base, 300, domain.StageLight)
		second := processed(base.Add(100*time.Minute), 100, domain.StageREM)

		ep := BuildEpisode([]domain.ProcessedSegment{first, second}, time.UTC)

		assert.True(t, ep.HasFlag(domain.FlagDataInconsistent))
	})

	t.Run("outlier duration", func(t *testing.T) {
		ep := BuildEpisode([]domain.ProcessedSegment{processed(base, 961, domain.StageLight)}, time.UTC)

		assert.True(t, ep.HasFlag(domain.FlagOutlierDuration))
		assert.False(t, ep.HasFlag(domain.FlagDataInconsistent))
	})
}

func TestBuildEpisode_ZeroLength(t *testing.T) {
	base := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)
	ep := BuildEpisode([]domain.ProcessedSegment{processed(base, 0, domain.StageLight)}, time.UTC)

	assert.Equal(t, 0, ep.InBedMinutes)
	assert.Equal(t, 0.0, ep.SleepEfficiency)
}

func TestBuildEpisode_DeterministicID(t *testing.T) {
	a := buildOne(cleanNight(), time.UTC)
	b := buildOne(cleanNight(), time.UTC)

	assert.Equal(t, a.EpisodeID, b.EpisodeID)
	assert.Equal(t, a, b)

	other := buildOne(fragmentedNight(), time.UTC)
	assert.NotEqual(t, a.EpisodeID, other.EpisodeID)
}

func TestNightKey(t *testing.T) {
	prague := mustLoad("Europe/Prague")
	newYork := mustLoad("America/New_York")

	tests := []struct {
		name  string
		start time.Time
		loc   *time.Location
		want  string
	}{
		{"evening start keeps date", time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC), time.UTC, "2024-01-15"},
		{"3pm start keeps date", time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC), time.UTC, "2024-01-15"},
		{"after midnight goes to previous day", time.Date(2024, 1, 16, 1, 30, 0, 0, time.UTC), time.UTC, "2024-01-15"},
		{"morning goes to previous day", time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC), time.UTC, "2024-01-15"},
		{"early afternoon keeps date", time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC), time.UTC, "2024-01-16"},
		{"local midnight crossing", time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC), prague, "2024-01-15"},
		{"local evening while UTC afternoon", time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC), prague, "2024-01-15"},
		{"dst spring forward night", time.Date(2024, 3, 10, 6, 30, 0, 0, time.UTC), newYork, "2024-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightKey(tt.start, tt.loc))
		})
	}
}

func TestBuildEpisodes_SkipsEmpty(t *testing.T) {
	base := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)
	clusters := [][]domain.ProcessedSegment{
		{processed(base, 30, domain.StageLight)},
		{},
	}

	got := BuildEpisodes(clusters, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-15", got[0].NightKeyDate)
}
