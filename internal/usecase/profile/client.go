package profile

import (
	"context"

	domain "profile-manager/internal/domain/profile"
)

// Client is the profile store client surface consumed by the HTTP handlers
// and the UI session.
type Client interface {
	List(ctx context.Context) ([]domain.Profile, error)
	Create(ctx context.Context, in domain.NewProfile) (domain.Profile, error)
	Update(ctx context.Context, username string, patch domain.Patch) (domain.Profile, error)
	Delete(ctx context.Context, username string) error
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
}

var _ Client = (*Service)(nil)
