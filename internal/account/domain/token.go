package domain

import "time"

// TokenPair is what login and refresh hand back: a short-lived access token
// (JWT) and an opaque refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshToken models the stored refresh token record in the DB.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Usable reports whether the token may still be exchanged.
func (t RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
