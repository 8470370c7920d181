package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"profile-manager/internal/events"
)

func newTestClient(h *Hub, buffer int) *Client {
	return &Client{id: "test", hub: h, send: make(chan []byte, buffer)}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestHub_BroadcastProfileEvent(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := newTestClient(h, 4)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	h.DeliverProfileEvent(ctx, events.ProfileEvent{Type: events.ProfileCreated, Username: "alice"})

	select {
	case msg := <-c.send:
		var evt events.ProfileEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if evt.Type != events.ProfileCreated || evt.Username != "alice" {
			t.Fatalf("unexpected event %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no message delivered")
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := newTestClient(h, 0)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	h.Broadcast([]byte(`{}`))
	waitFor(t, func() bool { return h.ClientCount() == 0 })
}

func TestHub_UnregisterAndShutdown(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	a := newTestClient(h, 1)
	b := newTestClient(h, 1)
	h.Register(a)
	h.Register(b)
	waitFor(t, func() bool { return h.ClientCount() == 2 })

	h.Unregister(a)
	waitFor(t, func() bool { return h.ClientCount() == 1 })
	if _, ok := <-a.send; ok {
		t.Fatalf("unregistered client channel should be closed")
	}

	cancel()
	<-done
	if h.ClientCount() != 0 {
		t.Fatalf("shutdown should disconnect all clients")
	}
	if _, ok := <-b.send; ok {
		t.Fatalf("client channel should be closed on shutdown")
	}
}

func TestHub_NilSafe(t *testing.T) {
	var h *Hub
	h.Broadcast([]byte("x"))
	h.DeliverProfileEvent(context.Background(), events.ProfileEvent{})
	if h.ClientCount() != 0 {
		t.Fatalf("nil hub has no clients")
	}
}

func TestHub_RegisterAfterShutdownDoesNotBlock(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	finished := make(chan struct{})
	var last *Client
	go func() {
		defer close(finished)
		for i := 0; i < 300; i++ {
			c := newTestClient(h, 1)
			h.Register(c)
			h.Unregister(c)
			last = c
		}
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("register or unregister blocked after shutdown")
	}
	if _, ok := <-last.send; ok {
		t.Fatalf("client registered after shutdown should have its channel closed")
	}
	if h.ClientCount() != 0 {
		t.Fatalf("no client should be added after shutdown")
	}
}
