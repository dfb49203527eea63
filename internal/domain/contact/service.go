package contact

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Submission, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Message = strings.TrimSpace(in.Message)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.MobileNumber = strings.TrimSpace(in.MobileNumber)

	if in.FullName == "" {
		return nil, fmt.Errorf("missing_full_name")
	}
	if in.Message == "" {
		return nil, fmt.Errorf("missing_message")
	}
	if in.Email == "" && in.MobileNumber == "" {
		return nil, fmt.Errorf("missing_contact_details")
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) List(ctx context.Context, unhandledOnly bool, limit, offset int32) ([]Submission, error) {
	return s.repo.List(ctx, unhandledOnly, limit, offset)
}

func (s *Service) MarkHandled(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("missing_submission_id")
	}
	return s.repo.MarkHandled(ctx, id)
}
