package profile

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the store client wraps exactly one of
// ErrValidation, ErrNotFound or ErrStore.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("profile not found")
	ErrStore      = errors.New("store error")
)

// ErrUsernameTaken is returned by repositories when the username unique
// constraint rejects a write. It is a validation error.
var ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrValidation)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
