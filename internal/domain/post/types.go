package post

import (
	"context"
	"time"
)

type Entity struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Body       string    `json:"body"`
	CategoryID string    `json:"category_id,omitempty"`
	AuthorID   string    `json:"author_id,omitempty"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateInput struct {
	Title      string
	Body       string
	CategoryID string
	AuthorID   string
}

type UpdateInput struct {
	Title      string
	Body       string
	CategoryID string
}

type ListFilter struct {
	CategorySlug  string
	PublishedOnly bool
	Limit         int32
	Offset        int32
}

type Repository interface {
	Create(ctx context.Context, slug string, in CreateInput) (*Entity, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Entity, error)
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) error
	GetBySlug(ctx context.Context, slug string) (*Entity, error)
	List(ctx context.Context, f ListFilter) ([]Entity, error)
	CreateCategory(ctx context.Context, name, slug string) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
}
