package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/cache"
	"github.com/aussiebroadwan/gearbox/internal/account/domain"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/pkg/cryptox"
	"github.com/aussiebroadwan/gearbox/pkg/idx"
	"github.com/aussiebroadwan/gearbox/pkg/mailx"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

const (
	DefaultResetCodeTTL = 15 * time.Minute
	resetCodeDigits     = 6
)

type PasswordResetService struct {
	Store   store.Store
	Hasher  cryptox.PasswordHasher
	Mailer  mailx.Mailer
	CodeTTL time.Duration

	// Throttle limits reset requests per email. Nil disables it.
	Throttle cache.Throttle

	// ConfirmThrottle caps confirm attempts per email. Tripping it drops the
	// user's outstanding codes, so a code survives only a handful of guesses.
	// Nil disables it.
	ConfirmThrottle cache.Throttle

	Clock Clock
}

func (s *PasswordResetService) codeTTL() time.Duration {
	if s.CodeTTL <= 0 {
		return DefaultResetCodeTTL
	}
	return s.CodeTTL
}

// fingerprint keys the code hash with the pepper. Six digits are too few for
// a bare hash to hide them from someone reading the database.
func (s *PasswordResetService) fingerprint(code string) string {
	return cryptox.KeyedFingerprint(s.Hasher.Pepper, code)
}

// Request and confirm counters may share a backend, so keys carry the step.
func requestThrottleKey(email string) string {
	return "request:" + email
}

func confirmThrottleKey(email string) string {
	return "confirm:" + email
}

// Request mails a fresh reset code to a registered user. Older codes of the
// user are replaced. Unknown emails are reported as not found.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	email = domain.NormalizeEmail(email)
	if email == "" {
		return newError(KindValidation, MsgEmailRequired)
	}

	// 1. Throttle per email. A throttle backend outage does not block resets.
	if s.Throttle != nil {
		if err := s.Throttle.Hit(ctx, requestThrottleKey(email)); err != nil {
			if errors.Is(err, cache.ErrThrottled) {
				return newError(KindRateLimited, MsgTooManyResets)
			}
			log.Warn("reset throttle unavailable", slog.Any("error", err))
		}
	}

	// 2. Look up the user
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return newError(KindNotFound, MsgUserNotFound)
		}
		return internal(err)
	}

	// 3. Generate the code; only its fingerprint is stored
	code, err := cryptox.GenerateNumericCode(resetCodeDigits)
	if err != nil {
		return internal(err)
	}

	rc := domain.ResetCode{
		ID:        idx.NewAt(now).String(),
		UserID:    user.ID,
		CodeHash:  s.fingerprint(code),
		CreatedAt: now,
		ExpiresAt: now.Add(s.codeTTL()),
	}
	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.ResetCodes().DeleteUserResetCodes(ctx, user.ID); err != nil {
			return err
		}
		return tx.ResetCodes().CreateResetCode(ctx, rc)
	}); err != nil {
		return internal(err)
	}

	// 4. Mail it
	if err := s.Mailer.Send(ctx, mailx.ResetCodeMessage(user.Email, code)); err != nil {
		log.Error("reset code email failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return internal(err)
	}

	log.Info("password reset requested", slog.String("user_id", user.ID))
	return nil
}

type ConfirmResetInput struct {
	Email       string
	Code        string
	NewPassword string
}

// Confirm redeems a reset code and replaces the password. In one transaction
// the code is consumed, the hash replaced, remaining codes dropped and every
// refresh token of the user revoked. A code redeems at most once.
func (s *PasswordResetService) Confirm(ctx context.Context, in ConfirmResetInput) error {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	email := domain.NormalizeEmail(in.Email)
	code := strings.TrimSpace(in.Code)
	if email == "" || code == "" || in.NewPassword == "" {
		return newError(KindValidation, MsgResetFieldsRequired)
	}
	if passwordTooShort(in.NewPassword) {
		return newError(KindValidation, MsgPasswordTooShort)
	}

	// 1. User
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return newError(KindNotFound, MsgUserNotFound)
		}
		return internal(err)
	}

	// 2. Attempts per email. Unlike the request throttle this one fails closed.
	if s.ConfirmThrottle != nil {
		if err := s.ConfirmThrottle.Hit(ctx, confirmThrottleKey(email)); err != nil {
			if !errors.Is(err, cache.ErrThrottled) {
				return internal(err)
			}
			if err := s.Store.ResetCodes().DeleteUserResetCodes(ctx, user.ID); err != nil {
				return internal(err)
			}
			log.Warn("reset confirm throttled, codes dropped", slog.String("user_id", user.ID))
			return newError(KindRateLimited, MsgTooManyResetGuesses)
		}
	}

	// 3. Matching code within its window
	rc, err := s.Store.ResetCodes().GetResetCode(ctx, user.ID, s.fingerprint(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return newError(KindToken, MsgInvalidResetCode)
		}
		return internal(err)
	}
	if rc.Expired(now) {
		return newError(KindToken, MsgResetCodeExpired)
	}

	hash, err := s.Hasher.Hash(in.NewPassword)
	if err != nil {
		return internal(err)
	}

	// 4. Consume and apply atomically
	errConsumed := newError(KindToken, MsgInvalidResetCode)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.ResetCodes().DeleteResetCode(ctx, rc.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return errConsumed
			}
			return err
		}
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, hash, now); err != nil {
			return err
		}
		if err := tx.ResetCodes().DeleteUserResetCodes(ctx, user.ID); err != nil {
			return err
		}
		return tx.RefreshTokens().RevokeAllUserRefreshTokens(ctx, user.ID, now)
	})
	if err != nil {
		if errors.Is(err, errConsumed) {
			return errConsumed
		}
		return internal(err)
	}

	log.Info("password reset", slog.String("user_id", user.ID))
	return nil
}
