package seeder

import (
	"context"

	domain "profile-manager/internal/domain/profile"
	profileuc "profile-manager/internal/usecase/profile"
)

// DemoProfilesSeeder inserts a handful of sample profiles. Usernames that
// already exist are skipped, so it can be run repeatedly.
type DemoProfilesSeeder struct{}

func (DemoProfilesSeeder) Name() string { return "demo_profiles" }

func (DemoProfilesSeeder) Run(ctx context.Context, client profileuc.Client) (int, error) {
	items := []domain.NewProfile{
		{
			Username:    "ayu.lestari",
			Bio:         str("Backend engineer, weekend climber."),
			DateOfBirth: str("1994-03-12"),
			Gender:      domain.GenderFemale,
			City:        str("Bandung"),
			Country:     str("Indonesia"),
			Occupation:  str("Software Engineer"),
			Interests:   []string{"go", "climbing", "coffee"},
		},
		{
			Username:     "budi.santoso",
			Gender:       domain.GenderMale,
			City:         str("Surabaya"),
			Country:      str("Indonesia"),
			Occupation:   str("Product Designer"),
			Interests:    []string{"design", "photography"},
			FriendsCount: 12,
		},
		{
			Username:    "sam.taylor",
			Gender:      domain.GenderOther,
			City:        str("Melbourne"),
			Country:     str("Australia"),
			Website:     str("https://example.com/sam"),
			Interests:   []string{"music", "cycling"},
			GroupsCount: 3,
		},
		{
			Username: "inactive.user",
			IsActive: boolPtr(false),
		},
	}

	created := 0
	for _, it := range items {
		existing, err := client.GetByUsername(ctx, it.Username)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		if _, err := client.Create(ctx, it); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func str(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
