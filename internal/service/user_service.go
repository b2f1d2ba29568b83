package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/repository"
	"github.com/healthpilot/sleep-scorer/internal/scoring"
)

// UserService manages users and the home timezone their nights are keyed in.
type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// UpdateTimezone only affects nights scored afterwards.
	UpdateTimezone(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:       uuid.New(),
		Timezone: canonicalTimezone(req.Timezone),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateTimezone(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error) {
	return s.repo.UpdateTimezone(ctx, id, canonicalTimezone(req.Timezone))
}

// canonicalTimezone returns the zone name the scorer resolves name to, UTC when
// it cannot be loaded.
func canonicalTimezone(name string) string {
	return scoring.LoadLocation(name).String()
}
