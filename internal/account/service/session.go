package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/gearbox/internal/account/cache"
	"github.com/aussiebroadwan/gearbox/internal/account/domain"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/pkg/cryptox"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

type SessionService struct {
	Store       store.Store
	Tokens      *TokenIssuer
	Revocations cache.Revocations
	Clock       Clock
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction. A token can be rotated once.
func (s *SessionService) Refresh(ctx context.Context, refresh string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	refresh = strings.TrimSpace(refresh)
	if refresh == "" {
		return domain.TokenPair{}, newError(KindValidation, MsgRefreshRequired)
	}
	fp := cryptox.FingerprintToken(refresh)
	errInvalid := newError(KindAuth, MsgInvalidRefresh)

	// 1. Lookup the persisted refresh row by token fingerprint
	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, errInvalid
		}
		return domain.TokenPair{}, internal(err)
	}
	if !rt.Usable(now) {
		return domain.TokenPair{}, errInvalid
	}

	// 2. The account must still be allowed in
	user, err := s.Store.Users().GetUserByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, errInvalid
		}
		return domain.TokenPair{}, internal(err)
	}
	if !user.CanLogin() {
		return domain.TokenPair{}, errInvalid
	}

	// 3. Rotate: revoke old and create new atomically
	var pair domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, fp, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return errInvalid
			}
			return err
		}
		var err error
		pair, err = s.Tokens.IssuePair(ctx, tx.RefreshTokens(), user.ID, now)
		return err
	})
	if err != nil {
		if errors.Is(err, errInvalid) {
			log.Warn("refresh token reuse", slog.String("user_id", user.ID))
			return domain.TokenPair{}, errInvalid
		}
		return domain.TokenPair{}, internal(err)
	}

	return pair, nil
}

// Logout revokes what the caller presents: the refresh token, and the access
// token's jti for the rest of its lifetime. It never fails; problems are
// logged because the client discards its tokens either way.
func (s *SessionService) Logout(ctx context.Context, accessToken, refresh string) {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	if accessToken != "" && s.Revocations != nil {
		claims, err := s.Tokens.ParseAccessToken(accessToken)
		if err == nil && claims.ID != "" {
			if err := s.Revocations.Revoke(ctx, claims.ID, claims.Remaining(now)); err != nil {
				log.Error("access token revocation failed", slog.Any("error", err))
			}
		}
	}

	if refresh = strings.TrimSpace(refresh); refresh != "" {
		err := s.Store.RefreshTokens().RevokeRefreshToken(ctx, cryptox.FingerprintToken(refresh), now)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("refresh token revocation failed", slog.Any("error", err))
		}
	}
}

// Profile returns the public profile of userID.
func (s *SessionService) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, newError(KindNotFound, "User not found")
		}
		return domain.Profile{}, internal(err)
	}
	return user.Profile(), nil
}
