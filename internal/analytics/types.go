package analytics

import "time"

// Status is the lifecycle state of a loan application. Values coming out of
// the store are free-form text; anything outside the known set still counts
// toward totals but never lands in a status-specific bucket.
type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusDisbursed   Status = "disbursed"
)

func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusDisbursed:
		return true
	default:
		return false
	}
}

// Application is a single loan application row as fetched from the store.
// Monetary fields stay strings here; the store keeps them as text and the
// aggregators parse them defensively.
type Application struct {
	ID              string
	LoanID          string
	UserID          string
	AgentID         string
	Status          Status
	LoanType        string
	LoanAmount      string
	AgentCommission string
	CreatedAt       time.Time
	ProcessedAt     *time.Time
}

// Profile is the customer profile row joined against applications by UserID.
type Profile struct {
	UserID       string
	FullName     string
	Email        string
	MobileNumber string
	IsActive     bool
	CreatedAt    time.Time
}
