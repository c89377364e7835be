package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/domain"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/pkg/cryptox"
	"github.com/aussiebroadwan/gearbox/pkg/idx"
	"github.com/aussiebroadwan/gearbox/pkg/mailx"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

type RegistrationService struct {
	Store   store.Store
	Hasher  cryptox.PasswordHasher
	Tokens  *TokenIssuer
	Mailer  mailx.Mailer
	SiteURL string
	Clock   Clock
}

// Register creates an inactive, unverified user and mails the verification
// link. It returns the normalised email.
//
// The email pre-check only keeps the error order stable; two concurrent
// registrations are settled by the unique index, whose violation maps to the
// same conflict error.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (string, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	// 1. Required fields and email shape
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return "", newError(KindValidation, MsgRegisterFieldsRequired)
	}
	if !validEmail(email) {
		return "", newError(KindValidation, MsgInvalidEmail)
	}

	// 2. Email not already registered
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return "", newError(KindConflict, MsgEmailExists)
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", internal(err)
	}

	// 3. Password confirmation and strength
	if in.Password != in.ConfirmPassword {
		return "", newError(KindValidation, MsgPasswordMismatch)
	}
	if passwordTooShort(in.Password) {
		return "", newError(KindValidation, MsgPasswordTooShort)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return "", internal(err)
	}

	// 4. Persist; the unique index is the real duplicate check
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("registration lost race on email", slog.String("email", email))
			return "", newError(KindConflict, MsgEmailExists)
		}
		return "", internal(err)
	}

	// 5. Mint and mail the verification link
	if err := sendVerification(ctx, s.Tokens, s.Mailer, s.SiteURL, user, now); err != nil {
		log.Error("verification email failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return "", internal(err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return email, nil
}

func sendVerification(ctx context.Context, tokens *TokenIssuer, mailer mailx.Mailer, siteURL string, u domain.User, now time.Time) error {
	token, err := tokens.VerificationToken(u.ID, now)
	if err != nil {
		return err
	}
	return mailer.Send(ctx, mailx.VerificationMessage(u.Email, mailx.VerificationLink(siteURL, token)))
}
