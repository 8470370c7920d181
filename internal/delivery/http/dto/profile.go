package dto

import (
	"time"

	"profile-manager/internal/domain/profile"
)

type ProfileResponse struct {
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Bio          *string   `json:"bio"`
	AvatarURL    *string   `json:"avatar_url"`
	DateOfBirth  *string   `json:"date_of_birth"`
	Gender       int16     `json:"gender"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	State        *string   `json:"state"`
	Country      *string   `json:"country"`
	Website      *string   `json:"website"`
	Occupation   *string   `json:"occupation"`
	Interests    []string  `json:"interests"`
	FriendsCount int       `json:"friends_count"`
	GroupsCount  int       `json:"groups_count"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	interests := p.Interests
	if interests == nil {
		interests = []string{}
	}
	return ProfileResponse{
		UserID:       p.UserID,
		Username:     p.Username,
		Bio:          p.Bio,
		AvatarURL:    p.AvatarURL,
		DateOfBirth:  p.DateOfBirth,
		Gender:       int16(p.Gender),
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		Country:      p.Country,
		Website:      p.Website,
		Occupation:   p.Occupation,
		Interests:    interests,
		FriendsCount: p.FriendsCount,
		GroupsCount:  p.GroupsCount,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func NewProfileListResponse(items []profile.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProfileResponse(p))
	}
	return out
}

// CreateProfileRequest carries every profile field except the store
// assigned ones.
type CreateProfileRequest struct {
	Username     string   `json:"username"`
	Bio          *string  `json:"bio"`
	AvatarURL    *string  `json:"avatar_url"`
	DateOfBirth  *string  `json:"date_of_birth"`
	Gender       int16    `json:"gender"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	Country      *string  `json:"country"`
	Website      *string  `json:"website"`
	Occupation   *string  `json:"occupation"`
	Interests    []string `json:"interests"`
	FriendsCount int      `json:"friends_count"`
	GroupsCount  int      `json:"groups_count"`
	IsActive     *bool    `json:"is_active"`
}

func (r CreateProfileRequest) ToNewProfile() profile.NewProfile {
	return profile.NewProfile{
		Username:     r.Username,
		Bio:          r.Bio,
		AvatarURL:    r.AvatarURL,
		DateOfBirth:  r.DateOfBirth,
		Gender:       profile.Gender(r.Gender),
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		Website:      r.Website,
		Occupation:   r.Occupation,
		Interests:    r.Interests,
		FriendsCount: r.FriendsCount,
		GroupsCount:  r.GroupsCount,
		IsActive:     r.IsActive,
	}
}

// UpdateProfileRequest is a partial update: absent or null fields are left
// untouched.
type UpdateProfileRequest struct {
	Username     *string   `json:"username"`
	Bio          *string   `json:"bio"`
	AvatarURL    *string   `json:"avatar_url"`
	DateOfBirth  *string   `json:"date_of_birth"`
	Gender       *int16    `json:"gender"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	State        *string   `json:"state"`
	Country      *string   `json:"country"`
	Website      *string   `json:"website"`
	Occupation   *string   `json:"occupation"`
	Interests    *[]string `json:"interests"`
	FriendsCount *int      `json:"friends_count"`
	GroupsCount  *int      `json:"groups_count"`
	IsActive     *bool     `json:"is_active"`
}

func (r UpdateProfileRequest) ToPatch() profile.Patch {
	var gender *profile.Gender
	if r.Gender != nil {
		g := profile.Gender(*r.Gender)
		gender = &g
	}
	return profile.Patch{
		Username:     r.Username,
		Bio:          r.Bio,
		AvatarURL:    r.AvatarURL,
		DateOfBirth:  r.DateOfBirth,
		Gender:       gender,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		Website:      r.Website,
		Occupation:   r.Occupation,
		Interests:    r.Interests,
		FriendsCount: r.FriendsCount,
		GroupsCount:  r.GroupsCount,
		IsActive:     r.IsActive,
	}
}
