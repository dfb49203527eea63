package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Deepsoni5/kucash-sub001/internal/db"
	"github.com/Deepsoni5/kucash-sub001/internal/messaging"
)

const (
	sendOTPTopic            = "send_otp"
	applicationDecidedTopic = "application_decided"

	otpTemplate      = "otp_login"
	decisionTemplate = "application_update"
)

type OutboxJob struct {
	ID          int64
	Topic       string
	Payload     []byte
	Status      string
	Attempts    int32
	LastError   string
	AvailableAt time.Time
}

type OutboxRepository interface {
	ClaimPending(ctx context.Context, limit int32) ([]OutboxJob, error)
	MarkDone(ctx context.Context, jobID int64) error
	MarkRetry(ctx context.Context, jobID int64, nextAvailableAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, jobID int64, lastError string) error
}

type UserDirectory interface {
	GetUserByID(ctx context.Context, userID string) (*db.User, error)
}

type Worker struct {
	outboxRepo   OutboxRepository
	users        UserDirectory
	sender       messaging.Sender
	maxAttempts  int32
	now          func() time.Time
	retryBackoff func(attempt int32) time.Duration
}

func NewWorker(outboxRepo OutboxRepository, users UserDirectory, sender messaging.Sender) *Worker {
	return &Worker{
		outboxRepo:  outboxRepo,
		users:       users,
		sender:      sender,
		maxAttempts: 5,
		now:         func() time.Time { return time.Now().UTC() },
		retryBackoff: func(attempt int32) time.Duration {
			if attempt < 1 {
				attempt = 1
			}
			return time.Duration(attempt*15) * time.Second
		},
	}
}

func (w *Worker) RunOnce(ctx context.Context, batchSize int32) error {
	jobs, err := w.outboxRepo.ClaimPending(ctx, batchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		if err := w.processJob(ctx, job); err != nil {
			return err
		}
	}

	return nil
}

func (w *Worker) processJob(ctx context.Context, job OutboxJob) error {
	switch job.Topic {
	case sendOTPTopic:
		return w.processSendOTP(ctx, job)
	case applicationDecidedTopic:
		return w.processApplicationDecided(ctx, job)
	default:
		if job.Attempts >= w.maxAttempts {
			return w.outboxRepo.MarkFailed(ctx, job.ID, "unsupported_topic")
		}
		next := w.now().Add(w.retryBackoff(job.Attempts))
		return w.outboxRepo.MarkRetry(ctx, job.ID, next, "unsupported_topic")
	}
}

type sendOTPPayload struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

func (w *Worker) processSendOTP(ctx context.Context, job OutboxJob) error {
	var payload sendOTPPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return w.handleJobError(ctx, job, errors.New("invalid_payload"))
	}
	if payload.Mobile == "" || payload.Code == "" {
		return w.handleJobError(ctx, job, errors.New("missing_mobile_or_code"))
	}

	_, err := w.sender.SendTemplate(ctx, payload.Mobile, otpTemplate, map[string]string{"code": payload.Code})
	if err != nil {
		return w.handleJobError(ctx, job, err)
	}

	return w.outboxRepo.MarkDone(ctx, job.ID)
}

type applicationDecidedPayload struct {
	ApplicationID string `json:"application_id"`
	LoanID        string `json:"loan_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
}

func (w *Worker) processApplicationDecided(ctx context.Context, job OutboxJob) error {
	var payload applicationDecidedPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return w.handleJobError(ctx, job, errors.New("invalid_payload"))
	}
	if payload.UserID == "" || payload.LoanID == "" {
		return w.handleJobError(ctx, job, errors.New("missing_user_or_loan_id"))
	}

	user, err := w.users.GetUserByID(ctx, payload.UserID)
	if err != nil {
		return w.handleJobError(ctx, job, err)
	}

	_, err = w.sender.SendTemplate(ctx, user.MobileNumber, decisionTemplate, map[string]string{
		"loan_id": payload.LoanID,
		"status":  payload.Status,
	})
	if err != nil {
		return w.handleJobError(ctx, job, err)
	}

	return w.outboxRepo.MarkDone(ctx, job.ID)
}

func (w *Worker) handleJobError(ctx context.Context, job OutboxJob, err error) error {
	msg := err.Error()
	if job.Attempts >= w.maxAttempts {
		return w.outboxRepo.MarkFailed(ctx, job.ID, msg)
	}
	next := w.now().Add(w.retryBackoff(job.Attempts))
	return w.outboxRepo.MarkRetry(ctx, job.ID, next, msg)
}
