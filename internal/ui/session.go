package ui

import (
	"context"
	"errors"
	"fmt"

	domain "profile-manager/internal/domain/profile"
	profileuc "profile-manager/internal/usecase/profile"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeSearch Mode = "search"
	ModeList   Mode = "list"
)

var errNoSelection = errors.New("no profile selected")

// Session is the state behind one profile manager screen. Actions never
// return errors; failures are reported through the Notifier and kept in Err.
type Session struct {
	Mode     Mode
	Form     Form
	Profiles []domain.Profile
	Selected *domain.Profile

	client   profileuc.Client
	notifier Notifier
	err      error
}

func NewSession(client profileuc.Client, notifier Notifier) *Session {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Session{
		Mode:     ModeList,
		Form:     NewForm(),
		Profiles: []domain.Profile{},
		client:   client,
		notifier: notifier,
	}
}

// Err returns the failure reported by the most recent action, if any.
func (s *Session) Err() error {
	return s.err
}

func (s *Session) SetMode(m Mode) {
	s.Mode = m
}

func (s *Session) Refresh(ctx context.Context) {
	s.err = nil
	s.refresh(ctx)
}

func (s *Session) SubmitCreate(ctx context.Context) {
	s.err = nil

	created, err := s.client.Create(ctx, s.Form.NewProfile())
	if err != nil {
		s.fail("failed to create profile", err)
		return
	}
	s.notify(LevelSuccess, fmt.Sprintf("profile %q created", created.Username))
	s.Form = NewForm()
	s.refresh(ctx)
	s.Mode = ModeList
}

// Search looks a profile up by username and selects it.
func (s *Session) Search(ctx context.Context, username string) {
	s.err = nil
	s.Mode = ModeSearch

	found, err := s.client.GetByUsername(ctx, username)
	if err != nil {
		s.fail("failed to search profile", err)
		return
	}
	if found == nil {
		s.Selected = nil
		s.notify(LevelInfo, fmt.Sprintf("no profile named %q", username))
		return
	}
	s.Selected = found
}

// Edit loads p into the form and selects it for SubmitUpdate.
func (s *Session) Edit(p domain.Profile) {
	s.Form = FormFromProfile(p)
	s.Selected = &p
}

func (s *Session) SubmitUpdate(ctx context.Context) {
	s.err = nil
	if s.Selected == nil {
		s.fail("failed to update profile", errNoSelection)
		return
	}

	patch := s.Form.Diff(*s.Selected)
	if patch.IsEmpty() {
		s.notify(LevelInfo, "nothing to update")
		return
	}

	updated, err := s.client.Update(ctx, s.Selected.Username, patch)
	if err != nil {
		s.fail("failed to update profile", err)
		return
	}
	s.notify(LevelSuccess, fmt.Sprintf("profile %q updated", updated.Username))
	s.Selected = nil
	s.Form = NewForm()
	s.refresh(ctx)
}

// Delete removes username after confirm returns true. A nil confirm deletes
// without asking.
func (s *Session) Delete(ctx context.Context, username string, confirm func(username string) bool) {
	s.err = nil
	if confirm != nil && !confirm(username) {
		s.notify(LevelInfo, "delete cancelled")
		return
	}

	if err := s.client.Delete(ctx, username); err != nil {
		s.fail("failed to delete profile", err)
		return
	}
	s.notify(LevelSuccess, fmt.Sprintf("profile %q deleted", username))
	if s.Selected != nil && s.Selected.Username == username {
		s.Selected = nil
	}
	s.refresh(ctx)
}

func (s *Session) refresh(ctx context.Context) {
	items, err := s.client.List(ctx)
	if err != nil {
		s.fail("failed to load profiles", err)
		return
	}
	s.Profiles = items
}

func (s *Session) fail(action string, err error) {
	s.err = err
	s.notify(LevelError, fmt.Sprintf("%s: %v", action, err))
}

func (s *Session) notify(level Level, msg string) {
	s.notifier.Notify(Notification{Level: level, Message: msg})
}
