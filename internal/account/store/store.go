package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a transaction hands out the same repos bound to
// the tx, and nobody can start a transaction within a transaction.
type Store interface {
	Users() Users
	ResetCodes() ResetCodes
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only use tx, never the outer Store.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already normalised email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate email returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// MarkUserVerified sets is_active and is_verified and bumps updated_at.
	MarkUserVerified(ctx context.Context, userID string, at time.Time) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string, at time.Time) error
}

type ResetCodes interface {
	CreateResetCode(ctx context.Context, c domain.ResetCode) error

	// GetResetCode finds a code of the user by fingerprint, expired or not.
	GetResetCode(ctx context.Context, userID, codeHash string) (domain.ResetCode, error)

	// DeleteResetCode consumes one code. ErrNotFound means another request
	// already consumed it.
	DeleteResetCode(ctx context.Context, id string) error

	// DeleteUserResetCodes removes every code of the user. Used both when a new
	// code replaces older ones and when a reset succeeds.
	DeleteUserResetCodes(ctx context.Context, userID string) error

	// DeleteExpiredResetCodes is housekeeping; returns the number removed.
	DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error)
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash returns the token by its fingerprint.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// RevokeRefreshToken flips revoked=1 and sets updated_at. ErrNotFound is
	// returned when no live (unrevoked) token has the hash.
	RevokeRefreshToken(ctx context.Context, hash string, at time.Time) error

	// RevokeAllUserRefreshTokens is used when the password changes.
	RevokeAllUserRefreshTokens(ctx context.Context, userID string, at time.Time) error

	// DeleteExpiredRefreshTokens is housekeeping. Expired and revoked rows are
	// removed; returns the number deleted.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}
