package postgres

import (
	"context"
	"fmt"
	"strings"

	"profile-manager/internal/database"
	dbpostgres "profile-manager/internal/database/postgres"
	"profile-manager/internal/domain/profile"
)

const profileColumns = `user_id, username, bio, avatar_url, to_char(date_of_birth, 'YYYY-MM-DD'), gender,
	address, city, state, country, website, occupation, interests,
	friends_count, groups_count, is_active, created_at, updated_at`

type ProfileRepository struct {
	db database.DB
}

var _ profile.Repository = (*ProfileRepository)(nil)

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+`
		 FROM user_profiles
		 ORDER BY user_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return out, nil
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+`
		 FROM user_profiles
		 WHERE username = $1`,
		username,
	)
	p, err := scanProfile(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, fmt.Errorf("get profile %q: %w", username, err)
	}
	return p, nil
}

func (r *ProfileRepository) Insert(ctx context.Context, in profile.NewProfile) (profile.Profile, error) {
	p := in.Build()
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_profiles (
			username, bio, avatar_url, date_of_birth, gender,
			address, city, state, country, website, occupation,
			interests, friends_count, groups_count, is_active
		 ) VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING `+profileColumns,
		p.Username, p.Bio, p.AvatarURL, p.DateOfBirth, int16(p.Gender),
		p.Address, p.City, p.State, p.Country, p.Website, p.Occupation,
		p.Interests, p.FriendsCount, p.GroupsCount, p.IsActive,
	)
	out, err := scanProfile(row)
	if err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return profile.Profile{}, profile.ErrUsernameTaken
		}
		return profile.Profile{}, fmt.Errorf("insert profile %q: %w", p.Username, err)
	}
	return out, nil
}

func (r *ProfileRepository) Update(ctx context.Context, username string, patch profile.Patch) (profile.Profile, error) {
	query, args := buildUpdate(username, patch)
	out, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case dbpostgres.IsNoRows(err):
			return profile.Profile{}, profile.ErrNotFound
		case dbpostgres.IsUniqueViolation(err):
			return profile.Profile{}, profile.ErrUsernameTaken
		default:
			return profile.Profile{}, fmt.Errorf("update profile %q: %w", username, err)
		}
	}
	return out, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, username string) (int64, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE username = $1`, username)
	if err != nil {
		return 0, fmt.Errorf("delete profile %q: %w", username, err)
	}
	return n, nil
}

// buildUpdate renders the UPDATE for the non-nil fields of patch, in column
// order. updated_at is always bumped.
func buildUpdate(username string, patch profile.Patch) (string, []any) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Username != nil {
		add("username", profile.NormalizeUsername(*patch.Username))
	}
	if patch.Bio != nil {
		add("bio", *patch.Bio)
	}
	if patch.AvatarURL != nil {
		add("avatar_url", *patch.AvatarURL)
	}
	if patch.DateOfBirth != nil {
		args = append(args, profile.NormalizeDate(patch.DateOfBirth))
		sets = append(sets, fmt.Sprintf("date_of_birth = $%d::date", len(args)))
	}
	if patch.Gender != nil {
		add("gender", int16(*patch.Gender))
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.City != nil {
		add("city", *patch.City)
	}
	if patch.State != nil {
		add("state", *patch.State)
	}
	if patch.Country != nil {
		add("country", *patch.Country)
	}
	if patch.Website != nil {
		add("website", *patch.Website)
	}
	if patch.Occupation != nil {
		add("occupation", *patch.Occupation)
	}
	if patch.Interests != nil {
		interests := *patch.Interests
		if interests == nil {
			interests = []string{}
		}
		add("interests", interests)
	}
	if patch.FriendsCount != nil {
		add("friends_count", *patch.FriendsCount)
	}
	if patch.GroupsCount != nil {
		add("groups_count", *patch.GroupsCount)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, username)
	query := fmt.Sprintf(
		`UPDATE user_profiles SET %s WHERE username = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), profileColumns,
	)
	return query, args
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	var gender int16
	if err := row.Scan(
		&p.UserID, &p.Username, &p.Bio, &p.AvatarURL, &p.DateOfBirth, &gender,
		&p.Address, &p.City, &p.State, &p.Country, &p.Website, &p.Occupation, &p.Interests,
		&p.FriendsCount, &p.GroupsCount, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return profile.Profile{}, err
	}
	p.Gender = profile.Gender(gender)
	if p.Interests == nil {
		p.Interests = []string{}
	}
	return p, nil
}
