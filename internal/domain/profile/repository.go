package profile

import "context"

// Repository is the persistence port for user_profiles.
//
// GetByUsername and Update return ErrNotFound when no row matches. Insert and
// Update return ErrUsernameTaken when the username is already in use. Delete
// reports how many rows it removed.
type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByUsername(ctx context.Context, username string) (Profile, error)
	Insert(ctx context.Context, in NewProfile) (Profile, error)
	Update(ctx context.Context, username string, patch Patch) (Profile, error)
	Delete(ctx context.Context, username string) (int64, error)
}
