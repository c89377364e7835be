// Package cache holds short-lived state that does not belong in the database:
// the access-token denylist and the reset-request throttle. Both have a redis
// implementation for multi-instance deployments and an in-process one for a
// single node or tests.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrThrottled is returned once a key has used its attempts for the window.
	ErrThrottled = errors.New("cache: throttled")

	// ErrUnavailable wraps backend failures.
	ErrUnavailable = errors.New("cache: backend unavailable")
)

// Revocations is a denylist of access token ids (jti).
type Revocations interface {
	// Revoke denies tokenID for ttl. A non-positive ttl is a no-op since the
	// token has already expired.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Throttle is a fixed-window attempt counter.
type Throttle interface {
	// Hit records an attempt for key and returns ErrThrottled when the window
	// allowance is exceeded.
	Hit(ctx context.Context, key string) error
}

// ThrottleConfig sets the allowance per window.
type ThrottleConfig struct {
	Window      time.Duration
	MaxAttempts int
}
