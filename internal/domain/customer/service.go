package customer

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

func (s *Service) UpdateProfile(ctx context.Context, in UpsertInput) (*Profile, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("missing_user_id")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return nil, fmt.Errorf("missing_full_name")
	}
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	return s.repo.Upsert(ctx, in)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) SetActive(ctx context.Context, userID string, active bool) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("missing_user_id")
	}
	return s.repo.SetActive(ctx, userID, active)
}
