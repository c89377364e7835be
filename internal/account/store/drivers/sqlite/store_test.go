package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/domain"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/internal/account/store/drivers/sqlite"
	"github.com/aussiebroadwan/gearbox/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$argon2id$stub",
		FirstName:    "Jane",
		LastName:     "Doe",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "jane@example.com")

	t.Run("get by id and email", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)
		require.Equal(t, "Jane", got.FirstName)
		require.False(t, got.IsActive)
		require.False(t, got.IsVerified)
		require.True(t, u.CreatedAt.Equal(got.CreatedAt))

		got, err = s.Users().GetUserByEmail(ctx, "JANE@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email is rejected by the unique index", func(t *testing.T) {
		dup := u
		dup.ID = idx.New().String()
		dup.Email = "Jane@Example.com"
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("mark verified", func(t *testing.T) {
		require.NoError(t, s.Users().MarkUserVerified(ctx, u.ID, time.Now()))
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, got.IsActive)
		require.True(t, got.IsVerified)
		require.True(t, got.CanLogin())

		require.ErrorIs(t, s.Users().MarkUserVerified(ctx, "missing", time.Now()), store.ErrNotFound)
	})

	t.Run("update password hash", func(t *testing.T) {
		require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, "$argon2id$new", time.Now()))
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "$argon2id$new", got.PasswordHash)

		require.ErrorIs(t, s.Users().UpdatePasswordHash(ctx, "missing", "x", time.Now()), store.ErrNotFound)
	})
}

func TestResetCodes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "reset@example.com")
	now := time.Now().UTC()

	live := domain.ResetCode{ID: idx.New().String(), UserID: u.ID, CodeHash: "h-live", CreatedAt: now, ExpiresAt: now.Add(15 * time.Minute)}
	stale := domain.ResetCode{ID: idx.New().String(), UserID: u.ID, CodeHash: "h-stale", CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-45 * time.Minute)}
	require.NoError(t, s.ResetCodes().CreateResetCode(ctx, live))
	require.NoError(t, s.ResetCodes().CreateResetCode(ctx, stale))

	got, err := s.ResetCodes().GetResetCode(ctx, u.ID, "h-live")
	require.NoError(t, err)
	require.Equal(t, live.ID, got.ID)
	require.False(t, got.Expired(now))

	got, err = s.ResetCodes().GetResetCode(ctx, u.ID, "h-stale")
	require.NoError(t, err)
	require.True(t, got.Expired(now))

	_, err = s.ResetCodes().GetResetCode(ctx, u.ID, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.ResetCodes().DeleteExpiredResetCodes(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, s.ResetCodes().DeleteResetCode(ctx, live.ID))
	require.ErrorIs(t, s.ResetCodes().DeleteResetCode(ctx, live.ID), store.ErrNotFound, "single use")

	require.NoError(t, s.ResetCodes().DeleteUserResetCodes(ctx, u.ID))
	_, err = s.ResetCodes().GetResetCode(ctx, u.ID, "h-live")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestResetCodeRequiresUser(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	err := s.ResetCodes().CreateResetCode(context.Background(), domain.ResetCode{
		ID: idx.New().String(), UserID: "ghost", CodeHash: "h", CreatedAt: now, ExpiresAt: now.Add(time.Minute),
	})
	require.Error(t, err)
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "tokens@example.com")
	now := time.Now().UTC()

	mk := func(hash string, exp time.Time) domain.RefreshToken {
		return domain.RefreshToken{ID: idx.New().String(), UserID: u.ID, TokenHash: hash, ExpiresAt: exp, CreatedAt: now, UpdatedAt: now}
	}
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, mk("a", now.Add(time.Hour))))
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, mk("b", now.Add(time.Hour))))
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, mk("old", now.Add(-time.Hour))))
	require.ErrorIs(t, s.RefreshTokens().CreateRefreshToken(ctx, mk("a", now.Add(time.Hour))), store.ErrAlreadyExists)

	got, err := s.RefreshTokens().GetRefreshTokenByHash(ctx, "a")
	require.NoError(t, err)
	require.True(t, got.Usable(now))

	require.NoError(t, s.RefreshTokens().RevokeRefreshToken(ctx, "a", now))
	got, err = s.RefreshTokens().GetRefreshTokenByHash(ctx, "a")
	require.NoError(t, err)
	require.True(t, got.Revoked)
	require.ErrorIs(t, s.RefreshTokens().RevokeRefreshToken(ctx, "a", now), store.ErrNotFound, "already revoked")
	require.ErrorIs(t, s.RefreshTokens().RevokeRefreshToken(ctx, "zzz", now), store.ErrNotFound)

	require.NoError(t, s.RefreshTokens().RevokeAllUserRefreshTokens(ctx, u.ID, now))
	got, err = s.RefreshTokens().GetRefreshTokenByHash(ctx, "b")
	require.NoError(t, err)
	require.True(t, got.Revoked)

	n, err := s.RefreshTokens().DeleteExpiredRefreshTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "tx@example.com")
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, u.ID, "rolled-back", time.Now()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.PasswordHash, got.PasswordHash)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tx(ctx)
		require.Error(t, err, "nested transactions are refused")
		return tx.Users().UpdatePasswordHash(ctx, u.ID, "committed", time.Now())
	}))
	got, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "committed", got.PasswordHash)
}
