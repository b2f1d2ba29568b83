package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/llm"
	"github.com/healthpilot/sleep-scorer/internal/repository"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Window sizes for insights
	HistoryWindowDays = 30
	RecentWindowDays  = 7
)

// InsightsService generates narrative sleep insights from stored scores.
type InsightsService interface {
	// Generate creates sleep insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	chronotypeService ChronotypeService
	trendService      TrendService
	llmClient         llm.InsightsLLM
	scoreRepo         repository.NightlyScoreRepository
	userRepo          repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	chronotypeService ChronotypeService,
	trendService TrendService,
	llmClient llm.InsightsLLM,
	scoreRepo repository.NightlyScoreRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		chronotypeService: chronotypeService,
		trendService:      trendService,
		llmClient:         llmClient,
		scoreRepo:         scoreRepo,
		userRepo:          userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()

	chronotype, err := s.chronotypeService.Compute(ctx, userID, HistoryWindowDays, DefaultChronotypeMinSleeps)
	if err != nil {
		return nil, err
	}

	history, err := s.trendService.ComputeWindow(ctx, userID, now.AddDate(0, 0, -HistoryWindowDays), now)
	if err != nil {
		return nil, err
	}

	recent, err := s.trendService.ComputeWindow(ctx, userID, now.AddDate(0, 0, -RecentWindowDays), now)
	if err != nil {
		return nil, err
	}

	var lastNight *domain.NightlyScoreResponse
	latest, err := s.scoreRepo.Latest(ctx, userID)
	switch {
	case err == nil:
		r := latest.ToResponse()
		lastNight = &r
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Chronotype: *chronotype,
		History:    *history,
		Recent:     *recent,
		LastNight:  lastNight,
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{
		Chronotype: *chronotype,
		LastNight:  lastNight,
		Insights:   *llmOutput,
	}
	response.Trends.History = *history
	response.Trends.Recent = *recent

	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		response.TraceID = sc.TraceID().String()
	}

	return response, nil
}
