package app

import (
	"context"
	"fmt"
	"strings"

	"profile-manager/internal/config"
	"profile-manager/internal/delivery/http/handler"
	"profile-manager/internal/delivery/http/middleware"
	"profile-manager/internal/delivery/http/routes"
	"profile-manager/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the fiber app around an already wired container.
func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithCancel(context.Background())

	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	c.Start(ctx)

	app := New(cfg, c)
	cleanup := func() error {
		cancel()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(log.Named("http"))
	errMw := middleware.NewErrorMiddleware(log.Named("http"))
	app.Use(accessLog.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var pinger handler.Pinger
	if c.DB != nil {
		pinger = c.DB
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(pinger),
		handler.NewProfileHandler(c.Profiles),
		ws.NewHandler(c.Hub, c.Logger.Named("ws")),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
