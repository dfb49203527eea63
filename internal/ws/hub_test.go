package ws

import (
	"context"
	"testing"
	"time"

	applicationdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/application"
)

func TestHubSubscribeAndPublish(t *testing.T) {
	hub := NewHub()
	client := NewClient(nil)

	hub.Subscribe("agent:applications:agent-1", client)
	hub.Publish("agent:applications:agent-1", []byte(`{"event":"application_decided"}`))

	select {
	case msg := <-client.out:
		if string(msg) != `{"event":"application_decided"}` {
			t.Fatalf("unexpected payload: %s", string(msg))
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for message")
	}

	hub.UnsubscribeAll(client)
}

type fakeEventSource struct {
	events []applicationdomain.Event
}

func (s *fakeEventSource) ListEventsSince(_ context.Context, lastID int64, _ int32) ([]applicationdomain.Event, error) {
	out := []applicationdomain.Event{}
	for _, ev := range s.events {
		if ev.ID > lastID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func TestNotifierFansOutToAdminAndAgent(t *testing.T) {
	hub := NewHub()
	admin := NewClient(nil)
	agent := NewClient(nil)
	hub.Subscribe("admin:applications", admin)
	hub.Subscribe("agent:applications:agent-1", agent)

	source := &fakeEventSource{events: []applicationdomain.Event{
		{ID: 1, ApplicationID: "a1", AgentID: "agent-1", EventName: "application_decided", Payload: []byte(`{"loan_id":"KC-1A2B3C4D"}`), CreatedAt: time.Now()},
	}}
	notifier := NewNotifier(source, hub, time.Second)

	if err := notifier.tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}

	for name, client := range map[string]*Client{"admin": admin, "agent": agent} {
		select {
		case <-client.out:
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("%s client received nothing", name)
		}
	}
	if notifier.lastID != 1 {
		t.Fatalf("expected watermark advanced, got %d", notifier.lastID)
	}
}

func TestNotifierSkipsAgentChannelWithoutAgent(t *testing.T) {
	hub := NewHub()
	agent := NewClient(nil)
	hub.Subscribe("agent:applications:agent-1", agent)

	source := &fakeEventSource{events: []applicationdomain.Event{
		{ID: 1, ApplicationID: "a1", EventName: "application_submitted", Payload: []byte(`{}`), CreatedAt: time.Now()},
	}}
	notifier := NewNotifier(source, hub, time.Second)

	if err := notifier.tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}

	select {
	case msg := <-agent.out:
		t.Fatalf("agent should not receive unassigned event, got %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
