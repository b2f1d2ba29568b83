package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/repository"
	"github.com/healthpilot/sleep-scorer/internal/scoring"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTrendWindowDays is the default window for trend calculation.
const DefaultTrendWindowDays = 30

// TrendService summarizes stored nightly scores.
type TrendService interface {
	// Compute calculates trends for a user over the last windowDays days.
	Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.TrendMetrics, error)
	// ComputeWindow calculates trends for nights whose primary episode ended in [from, to].
	ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.TrendMetrics, error)
}

type trendService struct {
	scoreRepo repository.NightlyScoreRepository
	userRepo  repository.UserRepository
}

// NewTrendService creates a new TrendService.
func NewTrendService(scoreRepo repository.NightlyScoreRepository, userRepo repository.UserRepository) TrendService {
	return &trendService{
		scoreRepo: scoreRepo,
		userRepo:  userRepo,
	}
}

func (s *trendService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.TrendMetrics, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}

	now := time.Now().UTC()
	return s.ComputeWindow(ctx, userID, now.AddDate(0, 0, -windowDays), now)
}

func (s *trendService) ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.TrendMetrics, error) {
	tracer := otel.Tracer("sleep-scorer/trends")
	ctx, span := tracer.Start(ctx, "TrendService.ComputeWindow",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("window.from", from.Format(time.RFC3339)),
			attribute.String("window.to", to.Format(time.RFC3339)),
		),
	)
	defer span.End()

	scores, err := s.scoreRepo.ListByEndRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := computeTrends(scores)
	result.From = from
	result.To = to

	span.SetAttributes(attribute.Int("nights.count", result.NightsCount))
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("trends.output", string(outputJSON)))
	}

	return result, nil
}

// computeTrends aggregates nightly scores into descriptive statistics.
func computeTrends(scores []domain.NightlyScore) *domain.TrendMetrics {
	result := &domain.TrendMetrics{
		NightsCount:   len(scores),
		QualityCounts: map[domain.QualityLabel]int{},
	}
	if len(scores) == 0 {
		return result
	}

	var (
		totals     []float64
		hours      []float64
		efficiency []float64
		deepPct    []float64
		remPct     []float64
		midpoints  []float64
	)

	for _, ns := range scores {
		totals = append(totals, float64(ns.Score))
		hours = append(hours, float64(ns.ActualSleepMinutes)/60.0)
		efficiency = append(efficiency, ns.SleepEfficiency)
		deepPct = append(deepPct, share(ns.DeepMinutes, ns.ActualSleepMinutes))
		remPct = append(remPct, share(ns.REMMinutes, ns.ActualSleepMinutes))

		loc := scoring.LoadLocation(ns.LocalTimezone)
		midpoints = append(midpoints, scoring.MinutesSinceMidnight(ns.Midpoint, loc))

		result.QualityCounts[ns.Quality]++
		result.ReadinessCredit += ns.ReadinessCredit
	}

	result.Score = computeStats(totals)
	result.SleepHours = computeStats(hours)
	result.Efficiency = computeStats(efficiency)
	result.DeepPct = computeStats(deepPct)
	result.REMPct = computeStats(remPct)
	result.Midpoint = computeStats(unwrapMinutes(midpoints))

	return result
}

func share(minutes, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(minutes) / float64(total)
}

// unwrapMinutes shifts each clock value by whole days so it lies within 12 hours
// of the first value. 23:50 and 00:10 then differ by 20 minutes, not 1420.
func unwrapMinutes(values []float64) []float64 {
	if len(values) == 0 {
		return values
	}
	out := make([]float64, len(values))
	ref := values[0]
	for i, v := range values {
		for v-ref > 720 {
			v -= 1440
		}
		for ref-v > 720 {
			v += 1440
		}
		out[i] = v
	}
	return out
}

// computeStats calculates descriptive statistics for a slice of values.
func computeStats(values []float64) domain.DescriptiveStats {
	if len(values) == 0 {
		return domain.DescriptiveStats{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))

	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	// Sample standard deviation
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	std := 0.0
	if len(values) > 1 {
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}

	return domain.DescriptiveStats{
		Avg: round2(avg),
		Std: round2(std),
		Min: round2(minVal),
		Max: round2(maxVal),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
