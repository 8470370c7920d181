package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"profile-manager/internal/config"
	"profile-manager/internal/events"
	"profile-manager/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Handler receives events that came back from the bus.
type Handler func(ctx context.Context, evt events.ProfileEvent)

// RedisBus fans profile events out to every server instance over a Redis
// channel. Without Redis it hands events straight to the local handler, so a
// single instance keeps working.
type RedisBus struct {
	client  *redis.Client
	channel string
	local   Handler
	logger  *zap.Logger

	warnedUnavailable atomic.Bool
}

var _ events.Publisher = (*RedisBus)(nil)

func NewRedisBus(cfg config.RedisConfig, local Handler, log *zap.Logger) *RedisBus {
	log = logger.OrNop(log)

	addr := fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.Host), strings.TrimSpace(cfg.Port))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, delivering profile events locally", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		client = nil
	}

	return newRedisBus(client, cfg.EventsChannel, local, log)
}

func newRedisBus(client *redis.Client, channel string, local Handler, log *zap.Logger) *RedisBus {
	if strings.TrimSpace(channel) == "" {
		channel = "profiles:events"
	}
	return &RedisBus{client: client, channel: channel, local: local, logger: logger.OrNop(log)}
}

func (b *RedisBus) Available() bool {
	return b != nil && b.client != nil
}

func (b *RedisBus) warnUnavailableOnce(err error) {
	if b.warnedUnavailable.CompareAndSwap(false, true) {
		b.logger.Warn("redis publish failed, delivering profile events locally", zap.Error(err))
	}
}

func (b *RedisBus) Publish(ctx context.Context, evt events.ProfileEvent) error {
	if b == nil {
		return nil
	}
	if !b.Available() {
		b.deliverLocal(ctx, evt)
		return nil
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		b.warnUnavailableOnce(err)
		b.deliverLocal(ctx, evt)
		return err
	}
	return nil
}

// Run forwards events from the Redis channel to the local handler until ctx
// is done. It returns immediately when Redis is unavailable.
func (b *RedisBus) Run(ctx context.Context) error {
	if !b.Available() {
		return nil
	}

	sub := b.client.Subscribe(ctx, b.channel)
	defer func() {
		_ = sub.Close()
	}()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}
	b.logger.Info("subscribed to profile events", zap.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errors.New("redis subscription closed")
			}
			evt, err := decodeEvent(msg.Payload)
			if err != nil {
				b.logger.Warn("dropping malformed profile event", zap.String("payload", msg.Payload), zap.Error(err))
				continue
			}
			b.deliverLocal(ctx, evt)
		}
	}
}

func (b *RedisBus) Close() error {
	if !b.Available() {
		return nil
	}
	return b.client.Close()
}

func (b *RedisBus) deliverLocal(ctx context.Context, evt events.ProfileEvent) {
	if b.local != nil {
		b.local(ctx, evt)
	}
}

func decodeEvent(payload string) (events.ProfileEvent, error) {
	var evt events.ProfileEvent
	if err := json.Unmarshal([]byte(payload), &evt); err != nil {
		return events.ProfileEvent{}, err
	}
	if evt.Type == "" || evt.Username == "" {
		return events.ProfileEvent{}, errors.New("missing type or username")
	}
	return evt, nil
}
