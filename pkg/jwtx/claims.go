package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default lifetimes. Services can override each of them through config.
const (
	// DefaultAccessTokenTTL is short-lived; refresh tokens cover longer sessions.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL is the lifetime of the opaque refresh token.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour

	// DefaultVerificationTokenTTL is how long an emailed verification link stays valid.
	DefaultVerificationTokenTTL = 24 * time.Hour
)

// Purpose tells tokens minted with the same secret apart, so an access token
// can never be replayed as a verification link and vice versa.
type Purpose string

const (
	PurposeAccess            Purpose = "access"
	PurposeEmailVerification Purpose = "email_verification"
)

// Claims are the claims embedded in every token this service signs.
type Claims struct {
	jwt.RegisteredClaims

	// UserID duplicates the subject under the name clients of the old API
	// already decode.
	UserID string `json:"user_id"`

	Purpose Purpose `json:"typ"`
}

// NewClaims builds claims for userID valid for ttl from now. Every token gets
// a fresh jti so individual access tokens can be revoked.
func NewClaims(userID string, purpose Purpose, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		UserID:  userID,
		Purpose: purpose,
	}
}

// ExpectPurpose returns ErrPurpose unless the token was minted for p.
func (c Claims) ExpectPurpose(p Purpose) error {
	if c.Purpose != p {
		return ErrPurpose
	}
	return nil
}

// Remaining reports how long the token stays valid after now. Zero when
// already expired or when the token carries no expiry.
func (c Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return max(c.ExpiresAt.Sub(now), 0)
}
