package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/gearbox/internal/account/domain"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/pkg/cryptox"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

type LoginService struct {
	Store  store.Store
	Hasher cryptox.PasswordHasher
	Tokens *TokenIssuer
	Clock  Clock
}

// Login checks the credentials and issues a session token pair. Only users
// that are both verified and active may log in. Unknown emails and wrong
// passwords share one error and comparable timing.
func (s *LoginService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.TokenPair{}, newError(KindValidation, MsgLoginFieldsRequired)
	}

	// 1. Credentials
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Hasher.VerifyDummy(password)
			return domain.TokenPair{}, newError(KindAuth, MsgInvalidLogin)
		}
		return domain.TokenPair{}, internal(err)
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			log.Info("login rejected", slog.String("user_id", user.ID), slog.String("reason", "password"))
			return domain.TokenPair{}, newError(KindAuth, MsgInvalidLogin)
		}
		return domain.TokenPair{}, internal(err)
	}

	// 2. Account state: verified first, then active
	if !user.IsVerified {
		return domain.TokenPair{}, newError(KindAuth, MsgNotVerified)
	}
	if !user.IsActive {
		return domain.TokenPair{}, newError(KindAuth, MsgInactive)
	}

	// 3. Session tokens
	pair, err := s.Tokens.IssuePair(ctx, s.Store.RefreshTokens(), user.ID, s.Clock.now())
	if err != nil {
		return domain.TokenPair{}, internal(err)
	}

	log.Info("login succeeded", slog.String("user_id", user.ID))
	return pair, nil
}
