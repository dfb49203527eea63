package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	applicationdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/application"
)

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `
id, loan_id, user_id, COALESCE(agent_id::text, ''), status, loan_type,
loan_amount, COALESCE(agent_commission, ''), created_at, processed_at`

func (r *ApplicationRepository) Create(ctx context.Context, loanID string, in applicationdomain.CreateInput) (*applicationdomain.Entity, error) {
	q := `
INSERT INTO loan_applications (loan_id, user_id, agent_id, loan_type, loan_amount, agent_commission)
VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, NULLIF($6, ''))
RETURNING ` + applicationColumns
	return r.scanOne(ctx, q, loanID, in.UserID, in.AgentID, in.LoanType, in.LoanAmount, in.AgentCommission)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*applicationdomain.Entity, error) {
	q := `SELECT ` + applicationColumns + ` FROM loan_applications WHERE id = $1`
	return r.scanOne(ctx, q, id)
}

func (r *ApplicationRepository) List(ctx context.Context, f applicationdomain.ListFilter) ([]applicationdomain.Entity, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	builder := strings.Builder{}
	builder.WriteString(`SELECT ` + applicationColumns + ` FROM loan_applications WHERE 1=1`)

	args := []any{}
	argPos := 1
	if strings.TrimSpace(f.UserID) != "" {
		builder.WriteString(" AND user_id = $")
		builder.WriteString(strconv.Itoa(argPos))
		args = append(args, f.UserID)
		argPos++
	}
	if strings.TrimSpace(f.AgentID) != "" {
		builder.WriteString(" AND agent_id = $")
		builder.WriteString(strconv.Itoa(argPos))
		args = append(args, f.AgentID)
		argPos++
	}
	if strings.TrimSpace(f.Status) != "" {
		builder.WriteString(" AND status = $")
		builder.WriteString(strconv.Itoa(argPos))
		args = append(args, f.Status)
		argPos++
	}
	if strings.TrimSpace(f.LoanType) != "" {
		builder.WriteString(" AND loan_type = $")
		builder.WriteString(strconv.Itoa(argPos))
		args = append(args, f.LoanType)
		argPos++
	}
	if !f.CreatedAfter.IsZero() {
		builder.WriteString(" AND created_at >= $")
		builder.WriteString(strconv.Itoa(argPos))
		args = append(args, f.CreatedAfter)
		argPos++
	}
	builder.WriteString(" ORDER BY created_at DESC")
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

	out := make([]applicationdomain.Entity, 0)
	for rows.Next() {
		var item applicationdomain.Entity
		if err := rows.Scan(
			&item.ID, &item.LoanID, &item.UserID, &item.AgentID, &item.Status, &item.LoanType,
			&item.LoanAmount, &item.AgentCommission, &item.CreatedAt, &item.ProcessedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string, processedAt *time.Time, agentCommission string) (*applicationdomain.Entity, error) {
	q := `
UPDATE loan_applications
SET status = $2,
    processed_at = COALESCE($3, processed_at),
    agent_commission = COALESCE(NULLIF($4, ''), agent_commission)
WHERE id = $1
RETURNING ` + applicationColumns
	return r.scanOne(ctx, q, id, status, processedAt, agentCommission)
}

func (r *ApplicationRepository) RecordEvent(ctx context.Context, applicationID, agentID, eventName string, payload []byte) error {
	q := `
INSERT INTO application_events (application_id, agent_id, event_name, payload)
VALUES ($1, NULLIF($2, '')::uuid, $3, COALESCE($4::jsonb, '{}'::jsonb))
`
	_, err := r.pool.Exec(ctx, q, applicationID, agentID, eventName, payload)
	return err
}

func (r *ApplicationRepository) ListEventsSince(ctx context.Context, lastID int64, limit int32) ([]applicationdomain.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	q := `
SELECT id, application_id, COALESCE(agent_id::text, ''), event_name, payload, created_at
FROM application_events
WHERE id > $1
ORDER BY id ASC
LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, lastID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applicationdomain.Event, 0)
	for rows.Next() {
		var ev applicationdomain.Event
		if err := rows.Scan(&ev.ID, &ev.ApplicationID, &ev.AgentID, &ev.EventName, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ApplicationRepository) scanOne(ctx context.Context, q string, args ...any) (*applicationdomain.Entity, error) {
	out := &applicationdomain.Entity{}
	err := r.pool.QueryRow(ctx, q, args...).Scan(
		&out.ID, &out.LoanID, &out.UserID, &out.AgentID, &out.Status, &out.LoanType,
		&out.LoanAmount, &out.AgentCommission, &out.CreatedAt, &out.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
