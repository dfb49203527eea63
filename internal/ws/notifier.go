package ws

import (
	"context"
	"encoding/json"
	"time"

	applicationdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/application"
)

type EventSource interface {
	ListEventsSince(ctx context.Context, lastID int64, limit int32) ([]applicationdomain.Event, error)
}

// Notifier tails the application_events table and fans rows out to
// subscribed portals. Polling keeps the API stateless; the watermark
// restarts at zero on boot, so late subscribers can see a replay of
// recent events.
type Notifier struct {
	source       EventSource
	hub          *Hub
	pollInterval time.Duration
	lastID       int64
}

func NewNotifier(source EventSource, hub *Hub, pollInterval time.Duration) *Notifier {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Notifier{source: source, hub: hub, pollInterval: pollInterval}
}

func (n *Notifier) Run(ctx context.Context) error {
	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := n.tick(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Notifier) tick(ctx context.Context) error {
	events, err := n.source.ListEventsSince(ctx, n.lastID, 100)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if ev.ID > n.lastID {
			n.lastID = ev.ID
		}

		data := map[string]any{}
		_ = json.Unmarshal(ev.Payload, &data)
		payload, _ := json.Marshal(map[string]any{
			"event":       ev.EventName,
			"data":        data,
			"recorded_at": ev.CreatedAt.UTC().Format(time.RFC3339),
		})

		n.hub.Publish("admin:applications", payload)
		if ev.AgentID != "" {
			n.hub.Publish("agent:applications:"+ev.AgentID, payload)
		}
	}
	return nil
}
