package domain

import "time"

// ResetCode is a pending password reset. Only the fingerprint of the numeric
// code is stored.
type ResetCode struct {
	ID        string
	UserID    string
	CodeHash  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the code can no longer be redeemed. A code is still
// valid at exactly ExpiresAt.
func (c ResetCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
