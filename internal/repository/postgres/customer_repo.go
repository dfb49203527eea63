package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	customerdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/customer"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

const profileColumns = `user_id, full_name, email, mobile_number, is_active, created_at, updated_at`

func (r *CustomerRepository) Upsert(ctx context.Context, in customerdomain.UpsertInput) (*customerdomain.Profile, error) {
	q := `
INSERT INTO customer_profiles (user_id, full_name, email, mobile_number)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
  full_name = EXCLUDED.full_name,
  email = EXCLUDED.email,
  mobile_number = EXCLUDED.mobile_number,
  updated_at = NOW()
RETURNING ` + profileColumns
	return r.scanOne(ctx, q, in.UserID, in.FullName, in.Email, in.MobileNumber)
}

func (r *CustomerRepository) GetByUserID(ctx context.Context, userID string) (*customerdomain.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM customer_profiles WHERE user_id = $1`
	return r.scanOne(ctx, q, userID)
}

func (r *CustomerRepository) ListByUserIDs(ctx context.Context, userIDs []string) ([]customerdomain.Profile, error) {
	if len(userIDs) == 0 {
		return []customerdomain.Profile{}, nil
	}
	q := `SELECT ` + profileColumns + ` FROM customer_profiles WHERE user_id = ANY($1)`
	rows, err := r.pool.Query(ctx, q, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]customerdomain.Profile, 0, len(userIDs))
	for rows.Next() {
		var p customerdomain.Profile
		if err := rows.Scan(&p.UserID, &p.FullName, &p.Email, &p.MobileNumber, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerRepository) SetActive(ctx context.Context, userID string, active bool) error {
	q := `UPDATE customer_profiles SET is_active = $2, updated_at = NOW() WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, q, userID, active)
	return err
}

func (r *CustomerRepository) scanOne(ctx context.Context, q string, args ...any) (*customerdomain.Profile, error) {
	out := &customerdomain.Profile{}
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&out.UserID, &out.FullName, &out.Email, &out.MobileNumber, &out.IsActive, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
