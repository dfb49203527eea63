package messaging

import (
	"context"
	"fmt"
	"time"
)

// Sender delivers a templated WhatsApp message. Delivery is fire-once: the
// caller (the outbox worker) owns retries.
type Sender interface {
	SendTemplate(ctx context.Context, toMobile, template string, params map[string]string) (string, error)
}

// StubSender logs nothing and fabricates a message id. Used in local and test
// environments where no gateway is configured.
type StubSender struct{}

func NewStubSender() *StubSender {
	return &StubSender{}
}

func (s *StubSender) SendTemplate(_ context.Context, toMobile, template string, _ map[string]string) (string, error) {
	if toMobile == "" {
		return "", fmt.Errorf("missing recipient")
	}
	if template == "" {
		return "", fmt.Errorf("missing template")
	}
	return fmt.Sprintf("stub-%s-%x", template, time.Now().UTC().UnixNano()), nil
}
