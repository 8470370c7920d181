package events

import (
	"context"
	"time"
)

type Type string

const (
	ProfileCreated Type = "profile.created"
	ProfileUpdated Type = "profile.updated"
	ProfileDeleted Type = "profile.deleted"
)

// ProfileEvent tells connected UIs that the profile list changed.
type ProfileEvent struct {
	Type             Type   `json:"type"`
	UserID           int64  `json:"user_id,omitempty"`
	Username         string `json:"username"`
	PreviousUsername string `json:"previous_username,omitempty"`
	Timestamp        string `json:"timestamp"`
}

func NewProfileEvent(t Type, userID int64, username string, now time.Time) ProfileEvent {
	return ProfileEvent{
		Type:      t,
		UserID:    userID,
		Username:  username,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt ProfileEvent) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, evt ProfileEvent) error

func (f PublisherFunc) Publish(ctx context.Context, evt ProfileEvent) error {
	return f(ctx, evt)
}

// Nop discards every event.
var Nop Publisher = PublisherFunc(func(context.Context, ProfileEvent) error { return nil })
