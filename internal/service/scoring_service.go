package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/metrics"
	"github.com/healthpilot/sleep-scorer/internal/repository"
	"github.com/healthpilot/sleep-scorer/internal/scoring"
	"github.com/healthpilot/sleep-scorer/pkg/pagination"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultRegularityHistoryNights is used when the configured history depth is not positive.
const DefaultRegularityHistoryNights = 7

// ScoringService runs the scoring pipeline for a user and stores the nightly results.
type ScoringService interface {
	// Compute scores every night found in the request and persists each valid primary score.
	// Nights without a valid primary score have any stored result removed.
	Compute(ctx context.Context, userID uuid.UUID, req *domain.ComputeScoresRequest) (*domain.ComputeScoresResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.NightlyScoreFilter) (*domain.NightlyScoreListResponse, error)
	Get(ctx context.Context, userID uuid.UUID, nightKey string) (*domain.NightlyScore, error)
}

type scoringService struct {
	userRepo      repository.UserRepository
	scoreRepo     repository.NightlyScoreRepository
	metrics       *metrics.Metrics
	log           *zap.Logger
	historyNights int
}

// NewScoringService creates a new ScoringService. m and log may be nil.
func NewScoringService(
	userRepo repository.UserRepository,
	scoreRepo repository.NightlyScoreRepository,
	m *metrics.Metrics,
	log *zap.Logger,
	historyNights int,
) ScoringService {
	if log == nil {
		log = zap.NewNop()
	}
	if historyNights <= 0 {
		historyNights = DefaultRegularityHistoryNights
	}
	return &scoringService{
		userRepo:      userRepo,
		scoreRepo:     scoreRepo,
		metrics:       m,
		log:           log.Named("scoring"),
		historyNights: historyNights,
	}
}

func (s *scoringService) Compute(ctx context.Context, userID uuid.UUID, req *domain.ComputeScoresRequest) (*domain.ComputeScoresResponse, error) {
	tracer := otel.Tracer("sleep-scorer/scoring")
	ctx, span := tracer.Start(ctx, "ScoringService.Compute",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("segments.count", len(req.Segments)),
		),
	)
	defer span.End()

	if len(req.Segments) == 0 {
		return nil, domain.ErrNoSegments
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tz := user.Timezone
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		tz = *req.LocalTimezone
	}
	loc := scoring.LoadLocation(tz)
	tz = loc.String()
	span.SetAttributes(attribute.String("user.timezone", tz))

	processed := scoring.Normalize(req.Segments)
	s.metrics.ObserveRequest(len(req.Segments), len(req.Segments)-len(processed))

	episodes := scoring.BuildEpisodes(scoring.Cluster(processed), loc)
	nights := scoring.GroupByNight(episodes)
	span.SetAttributes(
		attribute.Int("episodes.count", len(episodes)),
		attribute.Int("nights.count", len(nights)),
	)

	resp := &domain.ComputeScoresResponse{
		UserID:        userID,
		LocalTimezone: tz,
		Nights:        make([]domain.NightResult, 0, len(nights)),
	}

	// Nights are ascending, so each upsert is visible as history to the next night.
	for _, night := range nights {
		history, err := s.scoreRepo.ListMidpointsBefore(ctx, userID, night.Key, s.historyNights)
		if err != nil {
			return nil, fmt.Errorf("load regularity history for %s: %w", night.Key, err)
		}

		res := scoring.ScoreNight(night, history, loc)
		s.logNight(userID, &res)
		s.metrics.ObserveNight(&res)

		if res.Score != nil {
			naps := make([]domain.NapScoreResult, 0, len(res.Naps))
			for _, n := range res.Naps {
				naps = append(naps, n.Score)
			}
			record := domain.NewNightlyScore(userID, tz, res.Primary, res.Score, naps)
			if err := s.scoreRepo.Upsert(ctx, record); err != nil {
				return nil, fmt.Errorf("store nightly score %s: %w", night.Key, err)
			}
		} else if err := s.scoreRepo.DeleteByNightKey(ctx, userID, night.Key); err != nil {
			// A night that no longer scores must not keep an earlier stored result.
			return nil, fmt.Errorf("retract nightly score %s: %w", night.Key, err)
		}

		resp.Nights = append(resp.Nights, res)
	}

	return resp, nil
}

func (s *scoringService) logNight(userID uuid.UUID, res *domain.NightResult) {
	for _, ep := range res.Episodes {
		if len(ep.Flags) == 0 {
			continue
		}
		flags := make([]string, len(ep.Flags))
		for i, f := range ep.Flags {
			flags[i] = string(f)
		}
		s.log.Warn("episode flagged",
			zap.String("user_id", userID.String()),
			zap.String("night_key", res.NightKey),
			zap.String("episode_id", ep.EpisodeID.String()),
			zap.String("episode_type", string(ep.EpisodeType)),
			zap.String("flags", strings.Join(flags, ",")),
		)
	}

	switch {
	case res.Primary == nil:
		s.log.Info("no eligible primary episode",
			zap.String("user_id", userID.String()),
			zap.String("night_key", res.NightKey),
			zap.Int("episodes", len(res.Episodes)),
		)
	case res.Score == nil && res.Validation != nil:
		s.log.Info("primary episode rejected",
			zap.String("user_id", userID.String()),
			zap.String("night_key", res.NightKey),
			zap.String("reason", res.Validation.Reason),
		)
	default:
		s.log.Debug("night scored",
			zap.String("user_id", userID.String()),
			zap.String("night_key", res.NightKey),
			zap.Int("score", res.Score.Score),
			zap.Int("naps", len(res.Naps)),
		)
	}
}

func (s *scoringService) List(ctx context.Context, userID uuid.UUID, filter domain.NightlyScoreFilter) (*domain.NightlyScoreListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	scores, err := s.scoreRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(scores) > limit
	if hasMore {
		scores = scores[:limit]
	}

	data := make([]domain.NightlyScoreResponse, len(scores))
	for i := range scores {
		data[i] = scores[i].ToResponse()
	}

	resp := &domain.NightlyScoreListResponse{
		Data: data,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(scores) > 0 {
		last := scores[len(scores)-1]
		cursor := &pagination.Cursor{
			ID:       last.ID,
			NightKey: last.NightKey,
		}
		resp.Pagination.NextCursor = cursor.Encode()
	}

	return resp, nil
}

func (s *scoringService) Get(ctx context.Context, userID uuid.UUID, nightKey string) (*domain.NightlyScore, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.scoreRepo.GetByNightKey(ctx, userID, nightKey)
}
