package contact

import (
	"context"
	"time"
)

type Submission struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	Message      string    `json:"message"`
	Handled      bool      `json:"handled"`
	CreatedAt    time.Time `json:"created_at"`
}

type SubmitInput struct {
	FullName     string
	Email        string
	MobileNumber string
	Message      string
}

type Repository interface {
	Create(ctx context.Context, in SubmitInput) (*Submission, error)
	List(ctx context.Context, unhandledOnly bool, limit, offset int32) ([]Submission, error)
	CountUnhandled(ctx context.Context) (int64, error)
	MarkHandled(ctx context.Context, id string) error
}
