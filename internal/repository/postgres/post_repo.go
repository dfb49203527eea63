package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	postdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/post"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `
p.id, p.title, p.slug, p.body, COALESCE(p.category_id::text, ''), COALESCE(p.author_id::text, ''),
p.published, p.created_at, p.updated_at`

func (r *PostRepository) Create(ctx context.Context, slug string, in postdomain.CreateInput) (*postdomain.Entity, error) {
	q := `
INSERT INTO posts (title, slug, body, category_id, author_id)
VALUES ($1, $2, $3, NULLIF($4, '')::uuid, NULLIF($5, '')::uuid)
RETURNING id
`
	var id string
	if err := r.pool.QueryRow(ctx, q, in.Title, slug, in.Body, in.CategoryID, in.AuthorID).Scan(&id); err != nil {
		return nil, err
	}
	return r.getByID(ctx, id)
}

func (r *PostRepository) Update(ctx context.Context, id string, in postdomain.UpdateInput) (*postdomain.Entity, error) {
	q := `
UPDATE posts
SET title = COALESCE(NULLIF($2, ''), title),
    body = COALESCE(NULLIF($3, ''), body),
    category_id = COALESCE(NULLIF($4, '')::uuid, category_id),
    updated_at = NOW()
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, q, id, in.Title, in.Body, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.getByID(ctx, id)
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func (r *PostRepository) SetPublished(ctx context.Context, id string, published bool) error {
	q := `UPDATE posts SET published = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id, published)
	return err
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*postdomain.Entity, error) {
	q := `SELECT ` + postColumns + ` FROM posts p WHERE p.slug = $1`
	return r.scanOne(ctx, q, slug)
}

func (r *PostRepository) List(ctx context.Context, f postdomain.ListFilter) ([]postdomain.Entity, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	builder := strings.Builder{}
	builder.WriteString(`SELECT ` + postColumns + ` FROM posts p`)

	args := []any{}
	argPos := 1
	if strings.TrimSpace(f.CategorySlug) != "" {
		builder.WriteString(" JOIN categories c ON c.id = p.category_id AND c.slug = $")
		builder.WriteString(strconv.Itoa(argPos))
		args = append(args, f.CategorySlug)
		argPos++
	}
	builder.WriteString(" WHERE 1=1")
	if f.PublishedOnly {
		builder.WriteString(" AND p.published = TRUE")
	}
	builder.WriteString(" ORDER BY p.created_at DESC")
	builder.WriteString(" LIMIT $")
	builder.WriteString(strconv.Itoa(argPos))
	args = append(args, f.Limit)
	argPos++
	builder.WriteString(" OFFSET $")
	builder.WriteString(strconv.Itoa(argPos))
	args = append(args, f.Offset)

	rows, err := r.pool.Query(ctx, builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]postdomain.Entity, 0)
	for rows.Next() {
		var p postdomain.Entity
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Body, &p.CategoryID, &p.AuthorID,
			&p.Published, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostRepository) CreateCategory(ctx context.Context, name, slug string) (*postdomain.Category, error) {
	q := `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, slug, created_at
`
	out := &postdomain.Category{}
	if err := r.pool.QueryRow(ctx, q, name, slug).Scan(&out.ID, &out.Name, &out.Slug, &out.CreatedAt); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostRepository) ListCategories(ctx context.Context) ([]postdomain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, slug, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]postdomain.Category, 0)
	for rows.Next() {
		var c postdomain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostRepository) getByID(ctx context.Context, id string) (*postdomain.Entity, error) {
	q := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = $1`
	return r.scanOne(ctx, q, id)
}

func (r *PostRepository) scanOne(ctx context.Context, q string, args ...any) (*postdomain.Entity, error) {
	out := &postdomain.Entity{}
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&out.ID, &out.Title, &out.Slug, &out.Body, &out.CategoryID, &out.AuthorID,
		&out.Published, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
