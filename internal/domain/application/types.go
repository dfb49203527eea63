package application

import (
	"context"
	"time"
)

const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusDisbursed   = "disbursed"
)

type Entity struct {
	ID              string     `json:"id"`
	LoanID          string     `json:"loan_id"`
	UserID          string     `json:"user_id"`
	AgentID         string     `json:"agent_id,omitempty"`
	Status          string     `json:"status"`
	LoanType        string     `json:"loan_type"`
	LoanAmount      string     `json:"loan_amount"`
	AgentCommission string     `json:"agent_commission,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
}

type CreateInput struct {
	UserID          string
	AgentID         string
	LoanType        string
	LoanAmount      string
	AgentCommission string
}

type ListFilter struct {
	UserID       string
	AgentID      string
	Status       string
	LoanType     string
	CreatedAfter time.Time
	Limit        int32
	Offset       int32
}

type Event struct {
	ID            int64
	ApplicationID string
	AgentID       string
	EventName     string
	Payload       []byte
	CreatedAt     time.Time
}

type Repository interface {
	Create(ctx context.Context, loanID string, in CreateInput) (*Entity, error)
	GetByID(ctx context.Context, id string) (*Entity, error)
	List(ctx context.Context, f ListFilter) ([]Entity, error)
	UpdateStatus(ctx context.Context, id, status string, processedAt *time.Time, agentCommission string) (*Entity, error)
	RecordEvent(ctx context.Context, applicationID, agentID, eventName string, payload []byte) error
	ListEventsSince(ctx context.Context, lastID int64, limit int32) ([]Event, error)
}
