package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns nightly scores. Timezone is the home zone used for night keys and
// midpoints whenever a scoring request carries no override.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
// @Description User creation payload.
type CreateUserRequest struct {
	// IANA home timezone
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
}

// UpdateUserRequest changes a user's home timezone. Already stored nightly
// scores keep the timezone they were scored in.
// @Description User update payload.
type UpdateUserRequest struct {
	// IANA home timezone
	Timezone string `json:"timezone" validate:"required,timezone" example:"America/New_York"`
}

// UserResponse is the response body for user endpoints
// @Description User with home timezone.
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timezone  string    `json:"timezone" example:"Europe/Prague"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
