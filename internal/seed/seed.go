// Package seed fills a development database with synthetic wearable data. The
// data goes through the regular scoring service, so stored nights are real
// pipeline output.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seededNights = 40

// Users are the fixed sample users created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
}

// Run seeds sample users and scores synthetic nights for them. Safe to call
// multiple times: users are created once and nightly scores are upserted.
func Run(ctx context.Context, db *gorm.DB, scorer service.ScoringService, log *zap.Logger) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.NightlyScore{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	now := time.Now().UTC()
	for i, user := range Users {
		user := user
		if err := db.WithContext(ctx).Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		loc, err := time.LoadLocation(user.Timezone)
		if err != nil {
			return fmt.Errorf("user %s timezone: %w", user.ID, err)
		}

		// Fixed per-user seed keeps reruns identical.
		rng := rand.New(rand.NewSource(int64(i + 1)))
		first := now.In(loc).AddDate(0, 0, -seededNights)
		segments := Segments(rng, first, seededNights, loc)

		resp, err := scorer.Compute(ctx, user.ID, &domain.ComputeScoresRequest{Segments: segments})
		if err != nil {
			return fmt.Errorf("failed to score seed nights for %s: %w", user.ID, err)
		}
		log.Info("seeded user",
			zap.String("user_id", user.ID.String()),
			zap.String("timezone", user.Timezone),
			zap.Int("segments", len(segments)),
			zap.Int("nights", len(resp.Nights)),
		)
	}

	log.Info("seed completed")
	return nil
}

// Segments generates vendor-style stage intervals for nights consecutive nights
// starting on the local date of first. Each night is wrapped in an in_bed
// container and about half the days carry an afternoon nap.
func Segments(rng *rand.Rand, first time.Time, nights int, loc *time.Location) []domain.RawSegment {
	var out []domain.RawSegment
	for i := 0; i < nights; i++ {
		day := first.AddDate(0, 0, i)
		bedtime := time.Date(day.Year(), day.Month(), day.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, loc)
		target := time.Duration(360+rng.Intn(150)) * time.Minute
		out = append(out, night(rng, bedtime, target)...)

		if rng.Float32() < 0.5 {
			napStart := time.Date(day.Year(), day.Month(), day.Day(), 13+rng.Intn(2), rng.Intn(60), 0, 0, loc)
			out = append(out, nap(rng, napStart)...)
		}
	}
	return out
}

// night emits roughly 90 minute cycles: deep-heavy early, REM-heavy late.
func night(rng *rand.Rand, start time.Time, target time.Duration) []domain.RawSegment {
	var segs []domain.RawSegment
	t := start
	add := func(label string, minutes int) {
		end := t.Add(time.Duration(minutes) * time.Minute)
		segs = append(segs, domain.RawSegment{StartTime: t, EndTime: end, StageLabel: label, SourceID: "seed"})
		t = end
	}

	add("asleep_core", 10+rng.Intn(15))
	for cycle := 0; t.Sub(start) < target; cycle++ {
		deep := 35 - cycle*7 + rng.Intn(10)
		if deep < 5 {
			deep = 5
		}
		rem := 10 + cycle*6 + rng.Intn(10)

		add("asleep_core", 15+rng.Intn(15))
		add("asleep_deep", deep)
		add("asleep_core", 10+rng.Intn(10))
		add("asleep_rem", rem)
		if rng.Float32() < 0.35 {
			add("awake", 2+rng.Intn(8))
		}
	}

	return append(segs, domain.RawSegment{StartTime: start, EndTime: t, StageLabel: "in_bed", SourceID: "seed"})
}

func nap(rng *rand.Rand, start time.Time) []domain.RawSegment {
	light := time.Duration(10+rng.Intn(15)) * time.Minute
	deep := time.Duration(5+rng.Intn(15)) * time.Minute
	return []domain.RawSegment{
		{StartTime: start, EndTime: start.Add(light), StageLabel: "asleep_core", SourceID: "seed"},
		{StartTime: start.Add(light), EndTime: start.Add(light + deep), StageLabel: "asleep_deep", SourceID: "seed"},
	}
}
