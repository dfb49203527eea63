package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Deepsoni5/kucash-sub001/internal/db"
)

type fakeOutboxRepo struct {
	jobs      []OutboxJob
	doneIDs   []int64
	retryIDs  []int64
	failedIDs []int64
	enqueued  []string
}

func (r *fakeOutboxRepo) ClaimPending(_ context.Context, _ int32) ([]OutboxJob, error) {
	return r.jobs, nil
}

func (r *fakeOutboxRepo) MarkDone(_ context.Context, jobID int64) error {
	r.doneIDs = append(r.doneIDs, jobID)
	return nil
}

func (r *fakeOutboxRepo) MarkRetry(_ context.Context, jobID int64, _ time.Time, _ string) error {
	r.retryIDs = append(r.retryIDs, jobID)
	return nil
}

func (r *fakeOutboxRepo) MarkFailed(_ context.Context, jobID int64, _ string) error {
	r.failedIDs = append(r.failedIDs, jobID)
	return nil
}

func (r *fakeOutboxRepo) Enqueue(_ context.Context, topic string, _ []byte) error {
	r.enqueued = append(r.enqueued, topic)
	return nil
}

type fakeUserDirectory struct {
	users map[string]*db.User
}

func (d *fakeUserDirectory) GetUserByID(_ context.Context, userID string) (*db.User, error) {
	user, ok := d.users[userID]
	if !ok {
		return nil, errors.New("user_not_found")
	}
	return user, nil
}

type fakeSender struct {
	sent []sentMessage
	err  error
}

type sentMessage struct {
	to       string
	template string
	params   map[string]string
}

func (s *fakeSender) SendTemplate(_ context.Context, toMobile, template string, params map[string]string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, sentMessage{to: toMobile, template: template, params: params})
	return "msg-1", nil
}

func TestWorkerSendsOTP(t *testing.T) {
	outbox := &fakeOutboxRepo{jobs: []OutboxJob{{ID: 1, Topic: "send_otp", Attempts: 1, Payload: []byte(`{"mobile":"+919000000001","code":"123456"}`)}}}
	sender := &fakeSender{}
	worker := NewWorker(outbox, &fakeUserDirectory{}, sender)

	if err := worker.RunOnce(context.Background(), 10); err != nil {
		t.Fatalf("run once: %v", err)
	}
	if len(outbox.doneIDs) != 1 || outbox.doneIDs[0] != 1 {
		t.Fatalf("expected job marked done")
	}
	if len(sender.sent) != 1 || sender.sent[0].to != "+919000000001" {
		t.Fatalf("expected one message to the requested mobile, got %+v", sender.sent)
	}
	if sender.sent[0].template != "otp_login" || sender.sent[0].params["code"] != "123456" {
		t.Fatalf("unexpected template payload: %+v", sender.sent[0])
	}
}

func TestWorkerNotifiesDecidedApplication(t *testing.T) {
	payload := []byte(`{"application_id":"a1","loan_id":"KC-1A2B3C4D","user_id":"u1","status":"approved"}`)
	outbox := &fakeOutboxRepo{jobs: []OutboxJob{{ID: 2, Topic: "application_decided", Attempts: 1, Payload: payload}}}
	users := &fakeUserDirectory{users: map[string]*db.User{"u1": {ID: "u1", MobileNumber: "+919000000002"}}}
	sender := &fakeSender{}
	worker := NewWorker(outbox, users, sender)

	if err := worker.RunOnce(context.Background(), 10); err != nil {
		t.Fatalf("run once: %v", err)
	}
	if len(outbox.doneIDs) != 1 || outbox.doneIDs[0] != 2 {
		t.Fatalf("expected job marked done")
	}
	if len(sender.sent) != 1 || sender.sent[0].to != "+919000000002" {
		t.Fatalf("expected notification to customer mobile, got %+v", sender.sent)
	}
	if sender.sent[0].params["loan_id"] != "KC-1A2B3C4D" || sender.sent[0].params["status"] != "approved" {
		t.Fatalf("unexpected notification params: %+v", sender.sent[0].params)
	}
}

func TestWorkerRetriesOnSenderError(t *testing.T) {
	outbox := &fakeOutboxRepo{jobs: []OutboxJob{{ID: 3, Topic: "send_otp", Attempts: 1, Payload: []byte(`{"mobile":"+919000000001","code":"123456"}`)}}}
	worker := NewWorker(outbox, &fakeUserDirectory{}, &fakeSender{err: errors.New("gateway down")})

	if err := worker.RunOnce(context.Background(), 10); err != nil {
		t.Fatalf("run once: %v", err)
	}
	if len(outbox.retryIDs) != 1 || outbox.retryIDs[0] != 3 {
		t.Fatalf("expected job marked retry")
	}
}

func TestWorkerTerminalFailureAfterMaxAttempts(t *testing.T) {
	outbox := &fakeOutboxRepo{jobs: []OutboxJob{{ID: 9, Topic: "send_otp", Attempts: 5, Payload: []byte(`{"mobile":"+919000000001","code":"123456"}`)}}}
	worker := NewWorker(outbox, &fakeUserDirectory{}, &fakeSender{err: errors.New("gateway down")})

	if err := worker.RunOnce(context.Background(), 10); err != nil {
		t.Fatalf("run once: %v", err)
	}
	if len(outbox.failedIDs) != 1 || outbox.failedIDs[0] != 9 {
		t.Fatalf("expected job marked failed")
	}
}

func TestWorkerRetriesUnknownTopic(t *testing.T) {
	outbox := &fakeOutboxRepo{jobs: []OutboxJob{{ID: 4, Topic: "mystery", Attempts: 1}}}
	worker := NewWorker(outbox, &fakeUserDirectory{}, &fakeSender{})

	if err := worker.RunOnce(context.Background(), 10); err != nil {
		t.Fatalf("run once: %v", err)
	}
	if len(outbox.retryIDs) != 1 {
		t.Fatalf("expected unknown topic scheduled for retry")
	}
}

func TestOTPOutboxDispatcherEnqueues(t *testing.T) {
	outbox := &fakeOutboxRepo{}
	dispatcher := NewOTPOutboxDispatcher(outbox)

	if err := dispatcher.DispatchOTP(context.Background(), "+919000000001", "654321"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(outbox.enqueued) != 1 || outbox.enqueued[0] != "send_otp" {
		t.Fatalf("expected send_otp job enqueued, got %v", outbox.enqueued)
	}
}
