package profile

import (
	"strings"
	"time"
)

type Gender int16

const (
	GenderUnspecified Gender = 0
	GenderMale        Gender = 1
	GenderFemale      Gender = 2
	GenderOther       Gender = 3
)

func (g Gender) Valid() bool {
	return g >= GenderUnspecified && g <= GenderOther
}

func (g Gender) String() string {
	switch g {
	case GenderUnspecified:
		return "unspecified"
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderOther:
		return "other"
	default:
		return "invalid"
	}
}

// DateLayout is the wire and storage format of DateOfBirth.
const DateLayout = "2006-01-02"

// Profile is one row of user_profiles.
type Profile struct {
	UserID       int64
	Username     string
	Bio          *string
	AvatarURL    *string
	DateOfBirth  *string
	Gender       Gender
	Address      *string
	City         *string
	State        *string
	Country      *string
	Website      *string
	Occupation   *string
	Interests    []string
	FriendsCount int
	GroupsCount  int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProfile is the create input: a profile without the store assigned
// user_id and timestamps. A nil IsActive means active.
type NewProfile struct {
	Username     string
	Bio          *string
	AvatarURL    *string
	DateOfBirth  *string
	Gender       Gender
	Address      *string
	City         *string
	State        *string
	Country      *string
	Website      *string
	Occupation   *string
	Interests    []string
	FriendsCount int
	GroupsCount  int
	IsActive     *bool
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Username     *string
	Bio          *string
	AvatarURL    *string
	DateOfBirth  *string
	Gender       *Gender
	Address      *string
	City         *string
	State        *string
	Country      *string
	Website      *string
	Occupation   *string
	Interests    *[]string
	FriendsCount *int
	GroupsCount  *int
	IsActive     *bool
}

func (p Patch) IsEmpty() bool {
	return p.Username == nil &&
		p.Bio == nil &&
		p.AvatarURL == nil &&
		p.DateOfBirth == nil &&
		p.Gender == nil &&
		p.Address == nil &&
		p.City == nil &&
		p.State == nil &&
		p.Country == nil &&
		p.Website == nil &&
		p.Occupation == nil &&
		p.Interests == nil &&
		p.FriendsCount == nil &&
		p.GroupsCount == nil &&
		p.IsActive == nil
}

// Renames reports whether applying p to a profile currently named current
// changes its username.
func (p Patch) Renames(current string) bool {
	return p.Username != nil && NormalizeUsername(*p.Username) != NormalizeUsername(current)
}

// Apply returns a copy of pr with every non-nil field of p written over it.
// Store managed fields are not touched.
func (p Patch) Apply(pr Profile) Profile {
	if p.Username != nil {
		pr.Username = NormalizeUsername(*p.Username)
	}
	setStr := func(dst **string, src *string) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	setStr(&pr.Bio, p.Bio)
	setStr(&pr.AvatarURL, p.AvatarURL)
	if p.DateOfBirth != nil {
		pr.DateOfBirth = NormalizeDate(p.DateOfBirth)
	}
	setStr(&pr.Address, p.Address)
	setStr(&pr.City, p.City)
	setStr(&pr.State, p.State)
	setStr(&pr.Country, p.Country)
	setStr(&pr.Website, p.Website)
	setStr(&pr.Occupation, p.Occupation)
	if p.Gender != nil {
		pr.Gender = *p.Gender
	}
	if p.Interests != nil {
		pr.Interests = append([]string{}, (*p.Interests)...)
	}
	if p.FriendsCount != nil {
		pr.FriendsCount = *p.FriendsCount
	}
	if p.GroupsCount != nil {
		pr.GroupsCount = *p.GroupsCount
	}
	if p.IsActive != nil {
		pr.IsActive = *p.IsActive
	}
	return pr
}

// Build turns a create input into the row the store would hold, minus the
// store assigned fields.
func (n NewProfile) Build() Profile {
	active := true
	if n.IsActive != nil {
		active = *n.IsActive
	}
	interests := n.Interests
	if interests == nil {
		interests = []string{}
	}
	return Profile{
		Username:     NormalizeUsername(n.Username),
		Bio:          n.Bio,
		AvatarURL:    n.AvatarURL,
		DateOfBirth:  NormalizeDate(n.DateOfBirth),
		Gender:       n.Gender,
		Address:      n.Address,
		City:         n.City,
		State:        n.State,
		Country:      n.Country,
		Website:      n.Website,
		Occupation:   n.Occupation,
		Interests:    append([]string{}, interests...),
		FriendsCount: n.FriendsCount,
		GroupsCount:  n.GroupsCount,
		IsActive:     active,
	}
}

func NormalizeUsername(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeDate trims a date string. Blank dates become nil so they are
// stored as NULL.
func NormalizeDate(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
