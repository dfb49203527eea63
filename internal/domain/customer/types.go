package customer

import (
	"context"
	"time"
)

type Profile struct {
	UserID       string    `json:"user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpsertInput struct {
	UserID       string
	FullName     string
	Email        string
	MobileNumber string
}

type Repository interface {
	Upsert(ctx context.Context, in UpsertInput) (*Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	ListByUserIDs(ctx context.Context, userIDs []string) ([]Profile, error)
	SetActive(ctx context.Context, userID string, active bool) error
}
