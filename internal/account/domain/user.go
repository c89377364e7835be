package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string // lower-cased, trimmed, unique
	PasswordHash string // argon2 encoded
	FirstName    string
	LastName     string
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLogin reports whether the account may receive session tokens.
func (u User) CanLogin() bool {
	return u.IsActive && u.IsVerified
}

// NormalizeEmail is applied to every email before it is stored or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Profile is the public view of a user returned by /me.
type Profile struct {
	ID         string    `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Email      string    `json:"email" example:"jane@example.com"`
	FirstName  string    `json:"first_name" example:"Jane"`
	LastName   string    `json:"last_name" example:"Doe"`
	IsVerified bool      `json:"is_verified" example:"true"`
	DateJoined time.Time `json:"date_joined"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		IsVerified: u.IsVerified,
		DateJoined: u.CreatedAt,
	}
}
