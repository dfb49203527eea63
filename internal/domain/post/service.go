package post

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

func (s *Service) Create(ctx context.Context, in CreateInput) (*Entity, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("missing_title")
	}
	return s.repo.Create(ctx, Slugify(in.Title), in)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Entity, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing_post_id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("missing_title")
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("missing_post_id")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) SetPublished(ctx context.Context, id string, published bool) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("missing_post_id")
	}
	return s.repo.SetPublished(ctx, id, published)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Entity, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Entity, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("missing_category_name")
	}
	return s.repo.CreateCategory(ctx, name, Slugify(name))
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// Slugify lowercases and collapses anything non-alphanumeric into single
// hyphens.
func Slugify(raw string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
