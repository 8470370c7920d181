package seeder

import (
	"context"
	"fmt"

	profileuc "profile-manager/internal/usecase/profile"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, client profileuc.Client) (int, error)
}

type Runner struct {
	Seeders []Seeder
}

// Run executes every seeder in order and returns how many records were
// created in total. It stops at the first failure.
func (r Runner) Run(ctx context.Context, client profileuc.Client) (int, error) {
	if client == nil {
		return 0, fmt.Errorf("nil client")
	}
	total := 0
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx, client)
		total += n
		if err != nil {
			return total, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return total, nil
}

func Default() Runner {
	return Runner{Seeders: []Seeder{DemoProfilesSeeder{}}}
}
