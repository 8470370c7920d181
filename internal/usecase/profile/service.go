package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "profile-manager/internal/domain/profile"
	"profile-manager/internal/events"
	"profile-manager/internal/pkg/logger"

	"go.uber.org/zap"
)

// Service is the profile store client. Every method returns either a result
// or an error wrapping one of domain.ErrValidation, domain.ErrNotFound or
// domain.ErrStore.
type Service struct {
	repo      domain.Repository
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(repo domain.Repository, publisher events.Publisher, log *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger.OrNop(log),
		now:       time.Now,
	}
}

// List returns every profile in store order. It never returns a nil slice.
func (s *Service) List(ctx context.Context) ([]domain.Profile, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.storeError("list", err)
	}
	if items == nil {
		items = []domain.Profile{}
	}
	return items, nil
}

// Create validates in, checks that the username is free and inserts the
// profile. The lookup is only a fast path: a unique violation from the store
// is reported the same way.
func (s *Service) Create(ctx context.Context, in domain.NewProfile) (domain.Profile, error) {
	in.Username = domain.NormalizeUsername(in.Username)
	if err := in.Validate(); err != nil {
		return domain.Profile{}, err
	}

	taken, err := s.exists(ctx, in.Username)
	if err != nil {
		return domain.Profile{}, err
	}
	if taken {
		return domain.Profile{}, usernameTaken(in.Username)
	}

	created, err := s.repo.Insert(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return domain.Profile{}, usernameTaken(in.Username)
		}
		return domain.Profile{}, s.storeError("create", err)
	}

	s.logger.Info("profile created", zap.Int64("user_id", created.UserID), zap.String("username", created.Username))
	s.publish(ctx, events.NewProfileEvent(events.ProfileCreated, created.UserID, created.Username, s.now()))
	return created, nil
}

// Update applies patch to the profile currently named username.
func (s *Service) Update(ctx context.Context, username string, patch domain.Patch) (domain.Profile, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return domain.Profile{}, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if patch.IsEmpty() {
		return domain.Profile{}, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if err := patch.Validate(); err != nil {
		return domain.Profile{}, err
	}

	exists, err := s.exists(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}
	if !exists {
		return domain.Profile{}, notFound(username)
	}

	renamed := patch.Renames(username)
	if renamed {
		next := domain.NormalizeUsername(*patch.Username)
		taken, err := s.exists(ctx, next)
		if err != nil {
			return domain.Profile{}, err
		}
		if taken {
			return domain.Profile{}, usernameTaken(next)
		}
	}

	updated, err := s.repo.Update(ctx, username, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.Profile{}, notFound(username)
		case errors.Is(err, domain.ErrUsernameTaken):
			next := username
			if patch.Username != nil {
				next = domain.NormalizeUsername(*patch.Username)
			}
			return domain.Profile{}, usernameTaken(next)
		default:
			return domain.Profile{}, s.storeError("update", err)
		}
	}

	evt := events.NewProfileEvent(events.ProfileUpdated, updated.UserID, updated.Username, s.now())
	if renamed {
		evt.PreviousUsername = username
	}
	s.logger.Info("profile updated",
		zap.Int64("user_id", updated.UserID),
		zap.String("username", updated.Username),
		zap.Bool("renamed", renamed),
	)
	s.publish(ctx, evt)
	return updated, nil
}

// Delete removes the profile named username. Deleting a username that does
// not exist is not an error.
func (s *Service) Delete(ctx context.Context, username string) error {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	n, err := s.repo.Delete(ctx, username)
	if err != nil {
		return s.storeError("delete", err)
	}
	if n == 0 {
		s.logger.Debug("delete matched no profile", zap.String("username", username))
		return nil
	}

	s.logger.Info("profile deleted", zap.String("username", username))
	s.publish(ctx, events.NewProfileEvent(events.ProfileDeleted, 0, username, s.now()))
	return nil
}

// GetByUsername returns nil without an error when no profile matches.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return nil, nil
	}

	p, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, s.storeError("get", err)
	}
	return &p, nil
}

func (s *Service) exists(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, s.storeError("lookup", err)
	}
}

func (s *Service) publish(ctx context.Context, evt events.ProfileEvent) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("publish profile event",
			zap.String("type", string(evt.Type)),
			zap.String("username", evt.Username),
			zap.Error(err),
		)
	}
}

func (s *Service) storeError(op string, err error) error {
	s.logger.Error("profile store failure", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
}

func usernameTaken(username string) error {
	return fmt.Errorf("%w: %q", domain.ErrUsernameTaken, username)
}

func notFound(username string) error {
	return fmt.Errorf("%w: %q", domain.ErrNotFound, username)
}
