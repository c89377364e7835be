package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256SecretSize is the shortest secret NewHS256 accepts, in bytes.
const MinHS256SecretSize = 32

// HS256 signs and verifies tokens with a shared server secret.
type HS256 struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewHS256 creates an HS256 codec. Tokens it verifies must carry issuer when
// issuer is non-empty.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < MinHS256SecretSize {
		return nil, fmt.Errorf("jwtx: HS256 secret must be at least %d bytes, got %d", MinHS256SecretSize, len(secret))
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

// WithLeeway allows a little clock skew when checking exp and nbf.
func (h *HS256) WithLeeway(d time.Duration) *HS256 {
	h.leeway = d
	return h
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign encodes claims as a compact HS256 JWT.
func (h *HS256) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

// Verify parses token and maps the jwt library failures onto the jwtx
// sentinel errors. Signature problems win over expiry: a forged expired
// token reports ErrInvalidSig.
func (h *HS256) Verify(token string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(h.leeway),
	}
	if h.issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.issuer))
	}

	var claims Claims
	parsed, err := jwt.NewParser(opts...).ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !parsed.Valid {
		return Claims{}, ErrMalformed
	}
	if claims.UserID == "" || claims.UserID != claims.Subject {
		return Claims{}, ErrMalformed
	}
	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
