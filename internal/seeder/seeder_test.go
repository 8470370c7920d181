package seeder

import (
	"context"
	"testing"

	"profile-manager/internal/infrastructure/persistence/memory"
	profileuc "profile-manager/internal/usecase/profile"
)

func TestDefaultRunner_IsIdempotent(t *testing.T) {
	svc := profileuc.NewService(memory.NewProfileRepository(), nil, nil)
	ctx := context.Background()

	n, err := Default().Run(ctx, svc)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 created, got %d", n)
	}

	n, err = Default().Run(ctx, svc)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected nothing created on rerun, got %d", n)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 profiles, got %d", len(items))
	}
	inactive, _ := svc.GetByUsername(ctx, "inactive.user")
	if inactive == nil || inactive.IsActive {
		t.Fatalf("expected inactive.user to be inactive, got %+v", inactive)
	}
}

func TestRunner_NilClient(t *testing.T) {
	if _, err := Default().Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error")
	}
}
