package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profile-manager/internal/config"
	"profile-manager/internal/database"
	dbpostgres "profile-manager/internal/database/postgres"
	"profile-manager/internal/database/schema"
	"profile-manager/internal/domain/profile"
	"profile-manager/internal/infrastructure/persistence/memory"
	"profile-manager/internal/infrastructure/persistence/postgres"
	"profile-manager/internal/infrastructure/pubsub"
	"profile-manager/internal/pkg/logger"
	profileuc "profile-manager/internal/usecase/profile"
	"profile-manager/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	DB       database.DB
	Hub      *ws.Hub
	Bus      *pubsub.RedisBus
	Profiles *profileuc.Service
}

// NewContainer wires the store, event bus, websocket hub and profile client.
// Call Start to run the background loops and Close to release everything.
func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)

	repo, db, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub(log.Named("ws"))
	bus := pubsub.NewRedisBus(cfg.Redis, hub.DeliverProfileEvent, log.Named("pubsub"))
	svc := profileuc.NewService(repo, bus, log.Named("profiles"))

	return &Container{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Hub:      hub,
		Bus:      bus,
		Profiles: svc,
	}, nil
}

// OpenStore returns the profile repository selected by STORE_DRIVER. The
// returned DB is nil for the memory driver.
func OpenStore(ctx context.Context, cfg config.Config, log *zap.Logger) (profile.Repository, database.DB, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn("using in-memory profile store, data will not survive a restart")
		return memory.NewProfileRepository(), nil, nil

	case config.StoreDriverPostgres, "":
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, cfg.Database, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := schema.EnsureProfileTable(connectCtx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewProfileRepository(db), db, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Start runs the hub and the event subscriber until ctx is done.
func (c *Container) Start(ctx context.Context) {
	go c.Hub.Run(ctx)
	go func() {
		if err := c.Bus.Run(ctx); err != nil {
			c.Logger.Error("profile event subscriber stopped", zap.Error(err))
		}
	}()
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Bus != nil {
		errs = append(errs, c.Bus.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
