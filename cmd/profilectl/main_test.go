package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	domain "profile-manager/internal/domain/profile"
	"profile-manager/internal/infrastructure/persistence/memory"
	profileuc "profile-manager/internal/usecase/profile"
)

type harness struct {
	svc *profileuc.Service
}

func newHarness() *harness {
	return &harness{svc: profileuc.NewService(memory.NewProfileRepository(), nil, nil)}
}

func (h *harness) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := &cli{
		out:    &out,
		errOut: &errOut,
		in:     strings.NewReader(stdin),
		newClient: func(context.Context) (profileuc.Client, error) {
			return h.svc, nil
		},
	}
	root := newRootCmd(c)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCreateAndList(t *testing.T) {
	h := newHarness()

	out, _, err := h.run(t, "", "create", "--username", "alice", "--city", "Bandung", "--gender", "female", "--interests", "go,chess")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out, `[success] profile "alice" created`) {
		t.Fatalf("unexpected output %q", out)
	}

	out, _, err = h.run(t, "", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "Bandung") || !strings.Contains(out, "female") {
		t.Fatalf("unexpected list output %q", out)
	}
}

func TestCreate_DuplicateFails(t *testing.T) {
	h := newHarness()
	if _, _, err := h.run(t, "", "create", "--username", "bob"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, errOut, err := h.run(t, "", "create", "--username", "bob")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(errOut, "[error] failed to create profile") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestCreate_InvalidGender(t *testing.T) {
	h := newHarness()
	_, errOut, err := h.run(t, "", "create", "--username", "bob", "--gender", "7")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(errOut, "invalid gender") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestUpdate_OnlyChangedFlags(t *testing.T) {
	h := newHarness()
	if _, _, err := h.run(t, "", "create", "--username", "carol", "--bio", "hi", "--city", "Jakarta"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, _, err := h.run(t, "", "update", "carol", "--city", "Surabaya"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := h.svc.GetByUsername(context.Background(), "carol")
	if err != nil || got == nil {
		t.Fatalf("lookup failed: %v %v", got, err)
	}
	if *got.City != "Surabaya" || *got.Bio != "hi" {
		t.Fatalf("unexpected profile city=%q bio=%q", *got.City, *got.Bio)
	}
}

func TestUpdate_MissingProfile(t *testing.T) {
	h := newHarness()
	_, _, err := h.run(t, "", "update", "ghost", "--city", "x")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGet(t *testing.T) {
	h := newHarness()
	if _, _, err := h.run(t, "", "create", "--username", "dave", "--dob", "1990-04-01"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	out, _, err := h.run(t, "", "get", "dave")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !strings.Contains(out, `"username": "dave"`) || !strings.Contains(out, `"date_of_birth": "1990-04-01"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDelete_Confirmation(t *testing.T) {
	h := newHarness()
	if _, _, err := h.run(t, "", "create", "--username", "erin"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	out, _, err := h.run(t, "n\n", "delete", "erin")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "delete cancelled") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, _, err := h.run(t, "", "delete", "erin", "--yes"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, _ := h.svc.GetByUsername(context.Background(), "erin")
	if got != nil {
		t.Fatalf("expected erin deleted")
	}
}

func TestParseGender(t *testing.T) {
	cases := map[string]domain.Gender{
		"male":   domain.GenderMale,
		" Other": domain.GenderOther,
		"2":      domain.GenderFemale,
		"0":      domain.GenderUnspecified,
	}
	for in, want := range cases {
		got, err := parseGender(in)
		if err != nil || got != want {
			t.Fatalf("parseGender(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := parseGender("robot"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSeed(t *testing.T) {
	h := newHarness()
	out, _, err := h.run(t, "", "seed")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !strings.Contains(out, "[success] 4 demo profiles created") {
		t.Fatalf("unexpected output %q", out)
	}
	out, _, _ = h.run(t, "", "seed")
	if !strings.Contains(out, "[success] 0 demo profiles created") {
		t.Fatalf("unexpected output on rerun %q", out)
	}
}

func TestUpdate_KeepsStoredInterests(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	if _, err := h.svc.Create(ctx, domain.NewProfile{
		Username:  "alice",
		Interests: []string{"rock, paper", "go"},
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, _, err := h.run(t, "", "update", "alice", "--city", "Lisbon"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := h.svc.GetByUsername(ctx, "alice")
	if err != nil || got == nil {
		t.Fatalf("lookup failed: %v %v", got, err)
	}
	if strings.Join(got.Interests, "|") != "rock, paper|go" {
		t.Fatalf("interests rewritten: %q", got.Interests)
	}
}

func TestUpdate_WithoutFieldsFails(t *testing.T) {
	h := newHarness()
	if _, _, err := h.run(t, "", "create", "--username", "frank"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, errOut, err := h.run(t, "", "update", "frank")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(errOut, "[error] validation error: no fields to update") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}
