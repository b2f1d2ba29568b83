package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
)

// MockNightlyScoreRepository is an in-memory NightlyScoreRepository keyed by user and night key.
type MockNightlyScoreRepository struct {
	scores  map[string]*domain.NightlyScore
	upserts int
	deletes int
	err     error
}

func NewMockNightlyScoreRepository() *MockNightlyScoreRepository {
	return &MockNightlyScoreRepository{
		scores: make(map[string]*domain.NightlyScore),
	}
}

func scoreKey(userID uuid.UUID, nightKey string) string {
	return userID.String() + ":" + nightKey
}

func (m *MockNightlyScoreRepository) add(score domain.NightlyScore) {
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	m.scores[scoreKey(score.UserID, score.NightKey)] = &score
}

func (m *MockNightlyScoreRepository) userScores(userID uuid.UUID) []domain.NightlyScore {
	var result []domain.NightlyScore
	for _, s := range m.scores {
		if s.UserID == userID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].NightKey < result[j].NightKey
	})
	return result
}

func (m *MockNightlyScoreRepository) Upsert(ctx context.Context, score *domain.NightlyScore) error {
	if m.err != nil {
		return m.err
	}
	key := scoreKey(score.UserID, score.NightKey)
	if existing, ok := m.scores[key]; ok {
		score.ID = existing.ID
	} else if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	stored := *score
	m.scores[key] = &stored
	m.upserts++
	return nil
}

func (m *MockNightlyScoreRepository) DeleteByNightKey(ctx context.Context, userID uuid.UUID, nightKey string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.scores, scoreKey(userID, nightKey))
	m.deletes++
	return nil
}

func (m *MockNightlyScoreRepository) GetByNightKey(ctx context.Context, userID uuid.UUID, nightKey string) (*domain.NightlyScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.scores[scoreKey(userID, nightKey)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *MockNightlyScoreRepository) ListMidpointsBefore(ctx context.Context, userID uuid.UUID, nightKey string, limit int) ([]time.Time, error) {
	if m.err != nil {
		return nil, m.err
	}
	scores := m.userScores(userID)
	var result []time.Time
	for i := len(scores) - 1; i >= 0 && len(result) < limit; i-- {
		if scores[i].NightKey < nightKey {
			result = append(result, scores[i].Midpoint)
		}
	}
	return result, nil
}

func (m *MockNightlyScoreRepository) List(ctx context.Context, userID uuid.UUID, filter domain.NightlyScoreFilter) ([]domain.NightlyScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	scores := m.userScores(userID)
	var result []domain.NightlyScore
	for i := len(scores) - 1; i >= 0; i-- {
		s := scores[i]
		if filter.From != "" && s.NightKey < filter.From {
			continue
		}
		if filter.To != "" && s.NightKey > filter.To {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *MockNightlyScoreRepository) ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NightlyScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.NightlyScore
	for _, s := range m.userScores(userID) {
		if !s.EndAt.Before(from) && !s.EndAt.After(to) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *MockNightlyScoreRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.NightlyScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	scores := m.userScores(userID)
	if len(scores) == 0 {
		return nil, domain.ErrNotFound
	}
	latest := scores[len(scores)-1]
	return &latest, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) UpdateTimezone(ctx context.Context, id uuid.UUID, timezone string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user.Timezone = timezone
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

func (m *MockUserRepository) addUser(tz string) *domain.User {
	u := &domain.User{ID: uuid.New(), Timezone: tz}
	m.users[u.ID] = u
	return u
}

// MockInsightsLLM records the context it was called with.
type MockInsightsLLM struct {
	got    *domain.InsightsContext
	output *domain.LLMInsightsOutput
	err    error
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.got = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

// stageRun builds contiguous raw segments starting at start, one per (label, minutes) pair.
func stageRun(start time.Time, steps ...any) []domain.RawSegment {
	var out []domain.RawSegment
	t := start
	for i := 0; i+1 < len(steps); i += 2 {
		label := steps[i].(string)
		d := time.Duration(steps[i+1].(int)) * time.Minute
		out = append(out, domain.RawSegment{StartTime: t, EndTime: t.Add(d), StageLabel: label})
		t = t.Add(d)
	}
	return out
}

// nightSegments is a 480 minute night with a matching in_bed container.
func nightSegments(start time.Time) []domain.RawSegment {
	segs := stageRun(start,
		"light", 60, "deep", 90, "light", 60, "awake", 8,
		"rem", 100, "light", 90, "deep", 22, "light", 50,
	)
	return append(segs, domain.RawSegment{StartTime: start, EndTime: start.Add(480 * time.Minute), StageLabel: "in_bed"})
}
