package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/repository"
	"github.com/healthpilot/sleep-scorer/internal/scoring"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultChronotypeWindowDays = 30
	DefaultChronotypeMinSleeps  = 7

	// Median midpoint thresholds in minutes after local midnight.
	EarlyBirdThreshold    = 150 // before 02:30
	IntermediateThreshold = 270 // before 04:30, night owl otherwise
)

// ChronotypeService classifies users by the timing of their stored primary sleeps.
type ChronotypeService interface {
	// Compute classifies the median midpoint of nightly scores in the window.
	// With fewer than minSleeps nights the chronotype is unknown.
	Compute(ctx context.Context, userID uuid.UUID, windowDays, minSleeps int) (*domain.ChronotypeResult, error)
}

type chronotypeService struct {
	scoreRepo repository.NightlyScoreRepository
	userRepo  repository.UserRepository
}

func NewChronotypeService(scoreRepo repository.NightlyScoreRepository, userRepo repository.UserRepository) ChronotypeService {
	return &chronotypeService{
		scoreRepo: scoreRepo,
		userRepo:  userRepo,
	}
}

func (s *chronotypeService) Compute(ctx context.Context, userID uuid.UUID, windowDays, minSleeps int) (*domain.ChronotypeResult, error) {
	ctx, span := otel.Tracer("sleep-scorer/chronotype").Start(ctx, "ChronotypeService.Compute")
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if windowDays <= 0 {
		windowDays = DefaultChronotypeWindowDays
	}
	if minSleeps <= 0 {
		minSleeps = DefaultChronotypeMinSleeps
	}

	now := time.Now().UTC()
	scores, err := s.scoreRepo.ListByEndRange(ctx, userID, now.AddDate(0, 0, -windowDays), now)
	if err != nil {
		return nil, fmt.Errorf("list nightly scores: %w", err)
	}

	var all, free, work []int
	for _, ns := range scores {
		mid := signedMidpoint(ns.Midpoint, scoring.LoadLocation(ns.LocalTimezone))
		all = append(all, mid)
		if isFreeNight(ns.NightKey) {
			free = append(free, mid)
		} else {
			work = append(work, mid)
		}
	}
	span.SetAttributes(attribute.Int("nights.count", len(all)))

	result := &domain.ChronotypeResult{
		Chronotype: domain.ChronotypeUnknown,
		WindowDays: windowDays,
		NightsUsed: len(all),
	}
	if len(all) < minSleeps {
		return result, nil
	}

	mid := median(all)
	result.Chronotype = classifyChronotype(mid)
	result.MidSleepMinutesAfterMidnight = (mid + 1440) % 1440
	result.MidSleepLocalTime = minutesToTimeString(mid)
	result.MidSleepSpreadMinutes = medianAbsDeviation(all, mid)
	if len(free) > 0 && len(work) > 0 {
		jetlag := median(free) - median(work)
		result.SocialJetlagMinutes = &jetlag
	}

	return result, nil
}

// signedMidpoint returns local minutes after midnight, with midpoints from noon
// on counted as the previous evening (negative).
func signedMidpoint(t time.Time, loc *time.Location) int {
	mid := int(scoring.MinutesSinceMidnight(t, loc))
	if mid >= 720 {
		mid -= 1440
	}
	return mid
}

// isFreeNight reports whether the night key falls on a Friday or Saturday.
func isFreeNight(nightKey string) bool {
	day, err := time.Parse(time.DateOnly, nightKey)
	if err != nil {
		return false
	}
	return day.Weekday() == time.Friday || day.Weekday() == time.Saturday
}

func median(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func medianAbsDeviation(values []int, center int) int {
	dev := make([]int, len(values))
	for i, v := range values {
		d := v - center
		if d < 0 {
			d = -d
		}
		dev[i] = d
	}
	return median(dev)
}

// minutesToTimeString formats minutes after midnight as HH:MM, wrapping negatives.
func minutesToTimeString(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func classifyChronotype(midMinutes int) domain.ChronotypeType {
	switch {
	case midMinutes < EarlyBirdThreshold:
		return domain.ChronotypeEarlyBird
	case midMinutes < IntermediateThreshold:
		return domain.ChronotypeIntermediate
	default:
		return domain.ChronotypeNightOwl
	}
}
