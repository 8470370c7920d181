package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"profile-manager/internal/domain/profile"
)

// ProfileRepository keeps profiles in process. It enforces the same username
// uniqueness the postgres table does and is safe for concurrent use.
type ProfileRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[string]profile.Profile
	now    func() time.Time
}

var _ profile.Repository = (*ProfileRepository)(nil)

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		rows: make(map[string]profile.Profile),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *ProfileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]profile.Profile, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, clone(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return profile.Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.rows[username]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return clone(p), nil
}

func (r *ProfileRepository) Insert(ctx context.Context, in profile.NewProfile) (profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return profile.Profile{}, err
	}
	p := in.Build()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[p.Username]; ok {
		return profile.Profile{}, profile.ErrUsernameTaken
	}
	r.nextID++
	now := r.now()
	p.UserID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.rows[p.Username] = p
	return clone(p), nil
}

func (r *ProfileRepository) Update(ctx context.Context, username string, patch profile.Patch) (profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return profile.Profile{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[username]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	next := patch.Apply(cur)
	if next.Username != username {
		if _, taken := r.rows[next.Username]; taken {
			return profile.Profile{}, profile.ErrUsernameTaken
		}
		delete(r.rows, username)
	}
	next.UpdatedAt = r.now()
	r.rows[next.Username] = next
	return clone(next), nil
}

func (r *ProfileRepository) Delete(ctx context.Context, username string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[username]; !ok {
		return 0, nil
	}
	delete(r.rows, username)
	return 1, nil
}

func clone(p profile.Profile) profile.Profile {
	p.Interests = append([]string{}, p.Interests...)
	return p
}
