package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/gearbox/internal/account/domain"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/pkg/jwtx"
	"github.com/aussiebroadwan/gearbox/pkg/mailx"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

type VerificationService struct {
	Store   store.Store
	Tokens  *TokenIssuer
	Mailer  mailx.Mailer
	SiteURL string
	Clock   Clock
}

// Verify consumes a verification token and activates the user. Verifying an
// already verified user succeeds with MsgAlreadyVerified and changes nothing.
// The returned string is the success message.
func (s *VerificationService) Verify(ctx context.Context, token string) (string, error) {
	log := slogx.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return "", newError(KindValidation, MsgTokenRequired)
	}

	// 1. Signature, expiry and purpose
	userID, err := s.Tokens.ParseVerificationToken(token)
	if err != nil {
		log.Info("verification token rejected", slog.Any("error", err))
		if errors.Is(err, jwtx.ErrExpired) {
			return "", &Error{Kind: KindToken, Message: MsgVerificationExpired, Err: err}
		}
		return "", &Error{Kind: KindToken, Message: MsgVerificationInvalid, Err: err}
	}

	// 2. Look up the user
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", &Error{Kind: KindToken, Message: MsgVerificationInvalid, Err: err}
		}
		return "", internal(err)
	}

	if user.IsVerified {
		return MsgAlreadyVerified, nil
	}

	// 3. Flip the flags
	if err := s.Store.Users().MarkUserVerified(ctx, user.ID, s.Clock.now()); err != nil {
		return "", internal(err)
	}

	log.Info("email verified", slog.String("user_id", user.ID))
	return MsgEmailVerified, nil
}

// Resend mails a fresh verification link to an unverified user.
func (s *VerificationService) Resend(ctx context.Context, email string) (string, error) {
	log := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)
	if email == "" {
		return "", newError(KindValidation, MsgEmailRequired)
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", newError(KindNotFound, MsgUserNotFound)
		}
		return "", internal(err)
	}

	if user.IsVerified {
		return MsgAlreadyVerified, nil
	}

	if err := sendVerification(ctx, s.Tokens, s.Mailer, s.SiteURL, user, s.Clock.now()); err != nil {
		log.Error("verification email failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return "", internal(err)
	}
	return MsgVerificationSent, nil
}
