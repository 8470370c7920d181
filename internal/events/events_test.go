package events

import (
	"context"
	"testing"
	"time"
)

func TestNewProfileEvent(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	evt := NewProfileEvent(ProfileCreated, 9, "alice", at)
	if evt.Timestamp != "2024-03-01T05:30:00Z" {
		t.Fatalf("timestamp should be UTC RFC3339, got %q", evt.Timestamp)
	}
	if evt.Type != ProfileCreated || evt.UserID != 9 || evt.Username != "alice" {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestPublisherFunc(t *testing.T) {
	var got ProfileEvent
	p := PublisherFunc(func(_ context.Context, evt ProfileEvent) error {
		got = evt
		return nil
	})
	_ = p.Publish(context.Background(), ProfileEvent{Type: ProfileDeleted, Username: "bob"})
	if got.Username != "bob" {
		t.Fatalf("event not delivered")
	}
	if err := Nop.Publish(context.Background(), got); err != nil {
		t.Fatalf("nop publisher returned %v", err)
	}
}
