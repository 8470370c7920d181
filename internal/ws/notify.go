package ws

import (
	"context"
	"encoding/json"

	"profile-manager/internal/events"

	"go.uber.org/zap"
)

// DeliverProfileEvent broadcasts evt to every connected UI. Its signature
// matches the event bus local handler.
func (h *Hub) DeliverProfileEvent(_ context.Context, evt events.ProfileEvent) {
	if h == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Warn("encode profile event", zap.Error(err))
		return
	}
	h.Broadcast(b)
}
