package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profile-manager/internal/config"

	"github.com/gofiber/fiber/v3"
)

func memoryConfig() config.Config {
	return config.Config{
		App:   config.AppConfig{AppName: "profile-manager-test", Environment: "test", HTTPPort: "0"},
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
		Redis: config.RedisConfig{Host: "127.0.0.1", Port: "1", EventsChannel: "profiles:test"},
	}
}

func TestListenAddr(t *testing.T) {
	cases := map[string]string{
		"8080":   ":8080",
		" :9000": ":9000",
	}
	for in, want := range cases {
		got, err := ListenAddr(in)
		if err != nil || got != want {
			t.Fatalf("ListenAddr(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ListenAddr("  "); err == nil {
		t.Fatalf("expected error for empty port")
	}
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = "mongo"
	if _, _, err := OpenStore(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNew_MemoryStoreServesAPI(t *testing.T) {
	cfg := memoryConfig()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := NewContainer(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	defer func() { _ = c.Close() }()
	if c.Bus.Available() {
		t.Fatalf("redis should be unavailable on port 1")
	}
	c.Start(ctx)

	a := New(cfg, c)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("health: %v %v", resp, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = a.Fiber.Test(req)
	if err != nil || resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: %v %v", resp, err)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	resp, err = a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	if err != nil || resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown route: %v %v", resp, err)
	}
}
