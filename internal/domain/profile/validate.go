package profile

import (
	"math"
	"strings"
	"time"
)

// Validate checks a create input. The username is checked after trimming.
func (n NewProfile) Validate() error {
	if NormalizeUsername(n.Username) == "" {
		return validationf("username is required")
	}
	if !n.Gender.Valid() {
		return validationf("gender must be between 0 and 3, got %d", n.Gender)
	}
	if err := validateDate(n.DateOfBirth); err != nil {
		return err
	}
	if err := validateCount("friends_count", n.FriendsCount); err != nil {
		return err
	}
	if err := validateCount("groups_count", n.GroupsCount); err != nil {
		return err
	}
	return nil
}

// Validate checks a partial update. It does not check emptiness; callers
// decide whether an empty patch is acceptable.
func (p Patch) Validate() error {
	if p.Username != nil && NormalizeUsername(*p.Username) == "" {
		return validationf("username must not be blank")
	}
	if p.Gender != nil && !p.Gender.Valid() {
		return validationf("gender must be between 0 and 3, got %d", *p.Gender)
	}
	if err := validateDate(p.DateOfBirth); err != nil {
		return err
	}
	if p.FriendsCount != nil {
		if err := validateCount("friends_count", *p.FriendsCount); err != nil {
			return err
		}
	}
	if p.GroupsCount != nil {
		if err := validateCount("groups_count", *p.GroupsCount); err != nil {
			return err
		}
	}
	return nil
}

// validateCount bounds counters to the INTEGER column range.
func validateCount(field string, n int) error {
	if n < 0 {
		return validationf("%s must not be negative", field)
	}
	if n > math.MaxInt32 {
		return validationf("%s must not exceed %d", field, math.MaxInt32)
	}
	return nil
}

func validateDate(s *string) error {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, strings.TrimSpace(*s)); err != nil {
		return validationf("date_of_birth must be formatted as YYYY-MM-DD")
	}
	return nil
}

// ParseInterests splits a comma separated list, trimming items and dropping
// empty ones.
func ParseInterests(raw string) []string {
	out := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
