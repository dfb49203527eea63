package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	outboxTopicDecided = "application_decided"

	eventSubmitted = "application_submitted"
	eventDecided   = "application_decided"
)

// validTransitions is the full lifecycle: an application is filed as pending,
// optionally parked under review, then approved or rejected; approved loans
// are eventually disbursed.
var validTransitions = map[string][]string{
	StatusPending:     {StatusUnderReview, StatusApproved, StatusRejected},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusDisbursed},
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, topic string, payload []byte) error
}

type Service struct {
	repo       Repository
	outboxRepo OutboxRepository
	now        func() time.Time
}

func NewService(repo Repository, outboxRepo OutboxRepository) *Service {
	return &Service{
		repo:       repo,
		outboxRepo: outboxRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Submit files a new application with a fresh human-readable loan reference.
func (s *Service) Submit(ctx context.Context, in CreateInput) (*Entity, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("missing_user_id")
	}
	if strings.TrimSpace(in.LoanType) == "" {
		return nil, fmt.Errorf("missing_loan_type")
	}
	if strings.TrimSpace(in.LoanAmount) == "" {
		return nil, fmt.Errorf("missing_loan_amount")
	}

	created, err := s.repo.Create(ctx, newLoanID(), in)
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]any{"loan_id": created.LoanID, "loan_type": created.LoanType})
	_ = s.repo.RecordEvent(ctx, created.ID, created.AgentID, eventSubmitted, payload)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Entity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Entity, error) {
	return s.repo.List(ctx, f)
}

// Decide moves an application along its lifecycle. Terminal decisions stamp
// processed_at and notify the customer through the outbox.
func (s *Service) Decide(ctx context.Context, id, newStatus, agentCommission string) (*Entity, error) {
	newStatus = strings.ToLower(strings.TrimSpace(newStatus))

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(current.Status, newStatus) {
		return nil, fmt.Errorf("invalid_status_transition")
	}

	var processedAt *time.Time
	if newStatus == StatusApproved || newStatus == StatusRejected || newStatus == StatusDisbursed {
		ts := s.now()
		processedAt = &ts
	}

	updated, err := s.repo.UpdateStatus(ctx, id, newStatus, processedAt, strings.TrimSpace(agentCommission))
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]any{
		"application_id": updated.ID,
		"loan_id":        updated.LoanID,
		"user_id":        updated.UserID,
		"status":         updated.Status,
	})
	_ = s.repo.RecordEvent(ctx, updated.ID, updated.AgentID, eventDecided, payload)

	if processedAt != nil {
		if err := s.outboxRepo.Enqueue(ctx, outboxTopicDecided, payload); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func (s *Service) ListEventsSince(ctx context.Context, lastID int64, limit int32) ([]Event, error) {
	return s.repo.ListEventsSince(ctx, lastID, limit)
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func newLoanID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "KC-" + raw[:8]
}
