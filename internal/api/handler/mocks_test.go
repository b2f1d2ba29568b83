package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateFunc  func(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) UpdateTimezone(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return &domain.User{ID: id, Timezone: req.Timezone}, nil
}

// MockScoringService is a mock implementation of ScoringService
type MockScoringService struct {
	computeFunc func(ctx context.Context, userID uuid.UUID, req *domain.ComputeScoresRequest) (*domain.ComputeScoresResponse, error)
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.NightlyScoreFilter) (*domain.NightlyScoreListResponse, error)
	getFunc     func(ctx context.Context, userID uuid.UUID, nightKey string) (*domain.NightlyScore, error)
}

func (m *MockScoringService) Compute(ctx context.Context, userID uuid.UUID, req *domain.ComputeScoresRequest) (*domain.ComputeScoresResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID, req)
	}
	return &domain.ComputeScoresResponse{UserID: userID, LocalTimezone: "UTC", Nights: []domain.NightResult{}}, nil
}

func (m *MockScoringService) List(ctx context.Context, userID uuid.UUID, filter domain.NightlyScoreFilter) (*domain.NightlyScoreListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.NightlyScoreListResponse{
		Data:       []domain.NightlyScoreResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockScoringService) Get(ctx context.Context, userID uuid.UUID, nightKey string) (*domain.NightlyScore, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, nightKey)
	}
	return nil, domain.ErrNotFound
}

type mockChronotypeService struct {
	err error
}

func (m *mockChronotypeService) Compute(ctx context.Context, userID uuid.UUID, windowDays, minSleeps int) (*domain.ChronotypeResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ChronotypeResult{
		Chronotype:                   domain.ChronotypeIntermediate,
		MidSleepLocalTime:            "03:30",
		MidSleepMinutesAfterMidnight: 210,
		WindowDays:                   windowDays,
		NightsUsed:                   minSleeps,
	}, nil
}

type mockTrendService struct {
	gotWindow int
	err       error
}

func (m *mockTrendService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.TrendMetrics, error) {
	m.gotWindow = windowDays
	if m.err != nil {
		return nil, m.err
	}
	return &domain.TrendMetrics{NightsCount: 5, Score: domain.DescriptiveStats{Avg: 72}}, nil
}

func (m *mockTrendService) ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.TrendMetrics, error) {
	return &domain.TrendMetrics{From: from, To: to}, nil
}

type mockInsightsService struct {
	err error
}

func (m *mockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.InsightsResponse{
		Chronotype: domain.ChronotypeResult{
			Chronotype: domain.ChronotypeIntermediate,
		},
		Insights: domain.LLMInsightsOutput{
			Summary:      "Your sleep is steady.",
			Observations: []string{"Consistent midpoint"},
			Guidance:     []string{"Keep it up"},
		},
	}, nil
}
