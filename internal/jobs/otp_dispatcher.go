package jobs

import (
	"context"
	"encoding/json"
)

type Enqueuer interface {
	Enqueue(ctx context.Context, topic string, payload []byte) error
}

// OTPOutboxDispatcher queues OTP deliveries instead of calling the gateway
// inline, so a slow or flaky gateway never blocks the login request.
type OTPOutboxDispatcher struct {
	outbox Enqueuer
}

func NewOTPOutboxDispatcher(outbox Enqueuer) *OTPOutboxDispatcher {
	return &OTPOutboxDispatcher{outbox: outbox}
}

func (d *OTPOutboxDispatcher) DispatchOTP(ctx context.Context, mobileNumber, code string) error {
	payload, err := json.Marshal(sendOTPPayload{Mobile: mobileNumber, Code: code})
	if err != nil {
		return err
	}
	return d.outbox.Enqueue(ctx, sendOTPTopic, payload)
}
