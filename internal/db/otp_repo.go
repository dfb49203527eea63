package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OTPRecord struct {
	ID           string
	MobileNumber string
	CodeHash     string
	Attempts     int32
	ExpiresAt    time.Time
	VerifiedAt   *time.Time
	CreatedAt    time.Time
}

type OTPRepository struct {
	pool *pgxpool.Pool
}

func NewOTPRepository(pool *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{pool: pool}
}

const otpColumns = `id, mobile_number, code_hash, attempts, expires_at, verified_at, created_at`

func (r *OTPRepository) Create(ctx context.Context, mobileNumber, codeHash string, expiresAt time.Time) (*OTPRecord, error) {
	q := `
INSERT INTO otp_verifications (mobile_number, code_hash, expires_at)
VALUES ($1, $2, $3)
RETURNING ` + otpColumns
	return r.scan(ctx, q, mobileNumber, codeHash, expiresAt)
}

func (r *OTPRepository) LatestByMobile(ctx context.Context, mobileNumber string) (*OTPRecord, error) {
	q := `
SELECT ` + otpColumns + `
FROM otp_verifications
WHERE mobile_number = $1
ORDER BY created_at DESC
LIMIT 1
`
	return r.scan(ctx, q, mobileNumber)
}

func (r *OTPRepository) IncrementAttempts(ctx context.Context, id string) (int32, error) {
	q := `UPDATE otp_verifications SET attempts = attempts + 1 WHERE id = $1 RETURNING attempts`
	var attempts int32
	if err := r.pool.QueryRow(ctx, q, id).Scan(&attempts); err != nil {
		return 0, err
	}
	return attempts, nil
}

func (r *OTPRepository) MarkVerified(ctx context.Context, id string) error {
	q := `UPDATE otp_verifications SET verified_at = NOW() WHERE id = $1 AND verified_at IS NULL`
	_, err := r.pool.Exec(ctx, q, id)
	return err
}

func (r *OTPRepository) scan(ctx context.Context, q string, args ...any) (*OTPRecord, error) {
	rec := &OTPRecord{}
	err := r.pool.QueryRow(ctx, q, args...).
		Scan(&rec.ID, &rec.MobileNumber, &rec.CodeHash, &rec.Attempts, &rec.ExpiresAt, &rec.VerifiedAt, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}
