package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"profile-manager/internal/app"
	"profile-manager/internal/config"
	"profile-manager/internal/database"
	"profile-manager/internal/infrastructure/pubsub"
	"profile-manager/internal/pkg/logger"
	"profile-manager/internal/ui"
	profileuc "profile-manager/internal/usecase/profile"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type cli struct {
	out    io.Writer
	errOut io.Writer
	in     io.Reader

	// newClient is replaced in tests.
	newClient func(ctx context.Context) (profileuc.Client, error)

	client  profileuc.Client
	session *ui.Session
	closers []func() error
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "profilectl",
		Short:         "Manage user profiles from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open(cmd.Context())
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.SetIn(c.in)

	root.AddCommand(
		newListCmd(c),
		newGetCmd(c),
		newCreateCmd(c),
		newUpdateCmd(c),
		newDeleteCmd(c),
		newSeedCmd(c),
	)
	return root
}

func (c *cli) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	newClient := c.newClient
	if newClient == nil {
		newClient = c.connect
	}
	client, err := newClient(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(c.errOut, "[error] %v\n", err)
		return err
	}
	c.client = client
	c.session = ui.NewSession(client, ui.ConsoleNotifier{Out: c.out, Err: c.errOut})
	return nil
}

// connect builds the same store client the server uses. Events go to Redis
// when it is reachable so running servers can push them to their browsers.
func (c *cli) connect(ctx context.Context) (profileuc.Client, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}

	zl, err := logger.New(cfg.App.IsDevelopment(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, func() error {
		_ = zl.Sync()
		return nil
	})

	repo, db, err := app.OpenStore(ctx, cfg, zl)
	if err != nil {
		return nil, err
	}
	if db != nil {
		c.closers = append(c.closers, closeDB(db))
	}

	bus := pubsub.NewRedisBus(cfg.Redis, nil, zl.Named("pubsub"))
	c.closers = append(c.closers, bus.Close)

	return profileuc.NewService(repo, bus, zl.Named("profiles")), nil
}

func closeDB(db database.DB) func() error {
	return func() error {
		if err := db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		return nil
	}
}

func (c *cli) close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}
