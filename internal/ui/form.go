package ui

import (
	"strings"

	domain "profile-manager/internal/domain/profile"
)

// Form is the editable copy of a profile. Optional text fields are plain
// strings where blank means unset, and interests are comma separated.
type Form struct {
	Username     string
	Bio          string
	AvatarURL    string
	DateOfBirth  string
	Gender       domain.Gender
	Address      string
	City         string
	State        string
	Country      string
	Website      string
	Occupation   string
	Interests    string
	FriendsCount int
	GroupsCount  int
	IsActive     bool
}

func NewForm() Form {
	return Form{IsActive: true}
}

func FormFromProfile(p domain.Profile) Form {
	return Form{
		Username:     p.Username,
		Bio:          deref(p.Bio),
		AvatarURL:    deref(p.AvatarURL),
		DateOfBirth:  deref(p.DateOfBirth),
		Gender:       p.Gender,
		Address:      deref(p.Address),
		City:         deref(p.City),
		State:        deref(p.State),
		Country:      deref(p.Country),
		Website:      deref(p.Website),
		Occupation:   deref(p.Occupation),
		Interests:    joinInterests(p.Interests),
		FriendsCount: p.FriendsCount,
		GroupsCount:  p.GroupsCount,
		IsActive:     p.IsActive,
	}
}

func (f Form) NewProfile() domain.NewProfile {
	active := f.IsActive
	return domain.NewProfile{
		Username:     f.Username,
		Bio:          optional(f.Bio),
		AvatarURL:    optional(f.AvatarURL),
		DateOfBirth:  optional(f.DateOfBirth),
		Gender:       f.Gender,
		Address:      optional(f.Address),
		City:         optional(f.City),
		State:        optional(f.State),
		Country:      optional(f.Country),
		Website:      optional(f.Website),
		Occupation:   optional(f.Occupation),
		Interests:    domain.ParseInterests(f.Interests),
		FriendsCount: f.FriendsCount,
		GroupsCount:  f.GroupsCount,
		IsActive:     &active,
	}
}

// Diff returns a patch holding only the fields where f differs from p.
func (f Form) Diff(p domain.Profile) domain.Patch {
	var patch domain.Patch

	text := func(dst **string, formVal string, current *string) {
		if strings.TrimSpace(formVal) != strings.TrimSpace(deref(current)) {
			v := formVal
			*dst = &v
		}
	}

	if domain.NormalizeUsername(f.Username) != p.Username {
		v := f.Username
		patch.Username = &v
	}
	text(&patch.Bio, f.Bio, p.Bio)
	text(&patch.AvatarURL, f.AvatarURL, p.AvatarURL)
	text(&patch.DateOfBirth, f.DateOfBirth, p.DateOfBirth)
	text(&patch.Address, f.Address, p.Address)
	text(&patch.City, f.City, p.City)
	text(&patch.State, f.State, p.State)
	text(&patch.Country, f.Country, p.Country)
	text(&patch.Website, f.Website, p.Website)
	text(&patch.Occupation, f.Occupation, p.Occupation)

	if f.Gender != p.Gender {
		g := f.Gender
		patch.Gender = &g
	}
	if strings.TrimSpace(f.Interests) != joinInterests(p.Interests) {
		interests := domain.ParseInterests(f.Interests)
		patch.Interests = &interests
	}
	if f.FriendsCount != p.FriendsCount {
		n := f.FriendsCount
		patch.FriendsCount = &n
	}
	if f.GroupsCount != p.GroupsCount {
		n := f.GroupsCount
		patch.GroupsCount = &n
	}
	if f.IsActive != p.IsActive {
		b := f.IsActive
		patch.IsActive = &b
	}
	return patch
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// joinInterests is the form text for stored interests. Items holding a comma
// do not survive ParseInterests, so Diff compares this text instead.
func joinInterests(items []string) string {
	return strings.Join(items, ", ")
}
