package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	contactdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/contact"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

const submissionColumns = `id, full_name, email, mobile_number, message, handled, created_at`

func (r *ContactRepository) Create(ctx context.Context, in contactdomain.SubmitInput) (*contactdomain.Submission, error) {
	q := `
INSERT INTO contact_submissions (full_name, email, mobile_number, message)
VALUES ($1, $2, $3, $4)
RETURNING ` + submissionColumns
	out := &contactdomain.Submission{}
	err := r.pool.QueryRow(ctx, q, in.FullName, in.Email, in.MobileNumber, in.Message).Scan(
		&out.ID, &out.FullName, &out.Email, &out.MobileNumber, &out.Message, &out.Handled, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContactRepository) List(ctx context.Context, unhandledOnly bool, limit, offset int32) ([]contactdomain.Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	q := `SELECT ` + submissionColumns + ` FROM contact_submissions`
	if unhandledOnly {
		q += ` WHERE handled = FALSE`
	}
	q += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]contactdomain.Submission, 0)
	for rows.Next() {
		var s contactdomain.Submission
		if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.MobileNumber, &s.Message, &s.Handled, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContactRepository) CountUnhandled(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions WHERE handled = FALSE`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ContactRepository) MarkHandled(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE contact_submissions SET handled = TRUE WHERE id = $1`, id)
	return err
}
