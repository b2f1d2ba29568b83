package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrends(t *testing.T) {
	scores := []domain.NightlyScore{
		{
			Score: 80, Quality: domain.QualityExcellent, ActualSleepMinutes: 480, SleepEfficiency: 0.96,
			DeepMinutes: 96, REMMinutes: 96, LocalTimezone: "UTC",
			Midpoint: time.Date(2024, 1, 15, 23, 50, 0, 0, time.UTC), ReadinessCredit: 2,
		},
		{
			Score: 60, Quality: domain.QualityGood, ActualSleepMinutes: 360, SleepEfficiency: 0.90,
			DeepMinutes: 36, REMMinutes: 72, LocalTimezone: "UTC",
			Midpoint: time.Date(2024, 1, 17, 0, 10, 0, 0, time.UTC),
		},
	}

	got := computeTrends(scores)

	assert.Equal(t, 2, got.NightsCount)
	assert.Equal(t, domain.DescriptiveStats{Avg: 70, Std: 14.14, Min: 60, Max: 80}, got.Score)
	assert.Equal(t, 7.0, got.SleepHours.Avg)
	assert.Equal(t, 0.93, got.Efficiency.Avg)
	assert.Equal(t, 0.15, got.DeepPct.Avg)
	assert.Equal(t, 0.2, got.REMPct.Avg)
	assert.Equal(t, map[domain.QualityLabel]int{domain.QualityExcellent: 1, domain.QualityGood: 1}, got.QualityCounts)
	assert.Equal(t, 2, got.ReadinessCredit)

	// 23:50 and 00:10 are 20 minutes apart, not 1420.
	assert.Equal(t, 1440.0, got.Midpoint.Avg)
	assert.Equal(t, 14.14, got.Midpoint.Std)
}

func TestComputeTrends_Empty(t *testing.T) {
	got := computeTrends(nil)
	assert.Equal(t, 0, got.NightsCount)
	assert.Equal(t, domain.DescriptiveStats{}, got.Score)
	assert.NotNil(t, got.QualityCounts)
}

func TestUnwrapMinutes(t *testing.T) {
	assert.Equal(t, []float64{1430, 1450, 1380}, unwrapMinutes([]float64{1430, 10, 1380}))
	assert.Equal(t, []float64{10, -10}, unwrapMinutes([]float64{10, 1430}))
	assert.Empty(t, unwrapMinutes(nil))
}

func TestComputeStats(t *testing.T) {
	got := computeStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 5.0, got.Avg)
	assert.Equal(t, 2.14, got.Std)
	assert.Equal(t, 2.0, got.Min)
	assert.Equal(t, 9.0, got.Max)

	single := computeStats([]float64{3})
	assert.Equal(t, 0.0, single.Std)
}

func TestTrendService_Compute(t *testing.T) {
	users := NewMockUserRepository()
	scores := NewMockNightlyScoreRepository()
	user := users.addUser("UTC")
	now := time.Now().UTC()

	scores.add(domain.NightlyScore{UserID: user.ID, NightKey: "a", EndAt: now.Add(-48 * time.Hour), Score: 70, Quality: domain.QualityGood})
	scores.add(domain.NightlyScore{UserID: user.ID, NightKey: "b", EndAt: now.Add(-24 * time.Hour), Score: 90, Quality: domain.QualityExcellent})
	scores.add(domain.NightlyScore{UserID: user.ID, NightKey: "c", EndAt: now.AddDate(0, 0, -40), Score: 10, Quality: domain.QualityPoor})

	svc := NewTrendService(scores, users)
	got, err := svc.Compute(context.Background(), user.ID, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, got.NightsCount)
	assert.Equal(t, 80.0, got.Score.Avg)
	assert.InDelta(t, float64(DefaultTrendWindowDays*24), got.To.Sub(got.From).Hours(), 0.01)

	_, err = svc.Compute(context.Background(), uuid.New(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
