package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NightlyScoreRepository interface {
	// Upsert stores a nightly score, replacing any existing row for the same user and night key.
	// score.ID is set to the id of the stored row.
	Upsert(ctx context.Context, score *domain.NightlyScore) error
	// DeleteByNightKey removes the stored score for a night, if any.
	DeleteByNightKey(ctx context.Context, userID uuid.UUID, nightKey string) error
	GetByNightKey(ctx context.Context, userID uuid.UUID, nightKey string) (*domain.NightlyScore, error)
	// ListMidpointsBefore returns midpoints of up to limit nights with a key strictly before nightKey, newest first.
	ListMidpointsBefore(ctx context.Context, userID uuid.UUID, nightKey string, limit int) ([]time.Time, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.NightlyScoreFilter) ([]domain.NightlyScore, error)
	// ListByEndRange returns scores whose episode ended within [from, to], oldest first.
	ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NightlyScore, error)
	Latest(ctx context.Context, userID uuid.UUID) (*domain.NightlyScore, error)
}

type nightlyScoreRepository struct {
	db *gorm.DB
}

func NewNightlyScoreRepository(db *gorm.DB) NightlyScoreRepository {
	return &nightlyScoreRepository{db: db}
}

var upsertColumns = []string{
	"episode_id", "start_at", "end_at", "midpoint", "local_timezone",
	"in_bed_minutes", "actual_sleep_minutes", "awake_minutes", "light_minutes", "deep_minutes", "rem_minutes",
	"sleep_efficiency", "awakenings_count", "longest_awake_bout_minutes",
	"score", "quality", "duration_component", "efficiency_component", "deep_sleep_component",
	"rem_sleep_component", "fragmentation_component", "regularity_component",
	"nap_count", "readiness_credit", "updated_at",
}

// upsert leaves the id to the column default; on conflict the existing row keeps its id
// and RETURNING "id" copies it back into score.
func upsert(tx *gorm.DB, score *domain.NightlyScore) *gorm.DB {
	return tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "night_key"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(score)
}

func (r *nightlyScoreRepository) Upsert(ctx context.Context, score *domain.NightlyScore) error {
	score.ID = uuid.Nil
	return upsert(r.db.WithContext(ctx), score).Error
}

func deleteByNightKey(tx *gorm.DB, userID uuid.UUID, nightKey string) *gorm.DB {
	return tx.
		Where("user_id = ? AND night_key = ?", userID, nightKey).
		Delete(&domain.NightlyScore{})
}

func (r *nightlyScoreRepository) DeleteByNightKey(ctx context.Context, userID uuid.UUID, nightKey string) error {
	return deleteByNightKey(r.db.WithContext(ctx), userID, nightKey).Error
}

func (r *nightlyScoreRepository) GetByNightKey(ctx context.Context, userID uuid.UUID, nightKey string) (*domain.NightlyScore, error) {
	var score domain.NightlyScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND night_key = ?", userID, nightKey).
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &score, nil
}

func (r *nightlyScoreRepository) ListMidpointsBefore(ctx context.Context, userID uuid.UUID, nightKey string, limit int) ([]time.Time, error) {
	if limit <= 0 {
		return nil, nil
	}

	var midpoints []time.Time
	err := r.db.WithContext(ctx).
		Model(&domain.NightlyScore{}).
		Where("user_id = ? AND night_key < ?", userID, nightKey).
		Order("night_key DESC").
		Limit(limit).
		Pluck("midpoint", &midpoints).Error
	if err != nil {
		return nil, err
	}
	return midpoints, nil
}

func (r *nightlyScoreRepository) List(ctx context.Context, userID uuid.UUID, filter domain.NightlyScoreFilter) ([]domain.NightlyScore, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("night_key DESC").
		Order("id DESC")

	// Night keys are ISO dates, so string comparison is chronological
	if filter.From != "" {
		query = query.Where("night_key >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("night_key <= ?", filter.To)
	}

	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if cursor != nil {
		query = query.Where(
			"(night_key < ?) OR (night_key = ? AND id < ?)",
			cursor.NightKey, cursor.NightKey, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var scores []domain.NightlyScore
	if err := query.Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *nightlyScoreRepository) ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NightlyScore, error) {
	var scores []domain.NightlyScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND end_at >= ? AND end_at <= ?", userID, from, to).
		Order("night_key ASC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *nightlyScoreRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.NightlyScore, error) {
	var score domain.NightlyScore
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("night_key DESC").
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &score, nil
}
