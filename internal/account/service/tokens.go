package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/domain"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/pkg/cryptox"
	"github.com/aussiebroadwan/gearbox/pkg/idx"
	"github.com/aussiebroadwan/gearbox/pkg/jwtx"
)

// TokenIssuer mints every credential the account service hands out. The
// signing algorithm stays behind jwtx.Codec.
type TokenIssuer struct {
	Codec           jwtx.Codec
	Issuer          string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	VerificationTTL time.Duration
}

func (t *TokenIssuer) accessTTL() time.Duration {
	if t.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return t.AccessTTL
}

func (t *TokenIssuer) refreshTTL() time.Duration {
	if t.RefreshTTL <= 0 {
		return jwtx.DefaultRefreshTokenTTL
	}
	return t.RefreshTTL
}

func (t *TokenIssuer) verificationTTL() time.Duration {
	if t.VerificationTTL <= 0 {
		return jwtx.DefaultVerificationTokenTTL
	}
	return t.VerificationTTL
}

// VerificationToken mints the token embedded in the verification link.
func (t *TokenIssuer) VerificationToken(userID string, now time.Time) (string, error) {
	return t.Codec.Sign(jwtx.NewClaims(userID, jwtx.PurposeEmailVerification, t.verificationTTL(), t.Issuer, now))
}

// ParseVerificationToken returns the user id of a valid verification token.
// Errors are the jwtx sentinels.
func (t *TokenIssuer) ParseVerificationToken(token string) (string, error) {
	claims, err := t.Codec.Verify(token)
	if err != nil {
		return "", err
	}
	if err := claims.ExpectPurpose(jwtx.PurposeEmailVerification); err != nil {
		return "", err
	}
	id, err := idx.Parse(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("%w: user_id: %w", jwtx.ErrMalformed, err)
	}
	return id.String(), nil
}

// ParseAccessToken returns the claims of a valid access token.
func (t *TokenIssuer) ParseAccessToken(token string) (jwtx.Claims, error) {
	claims, err := t.Codec.Verify(token)
	if err != nil {
		return jwtx.Claims{}, err
	}
	if err := claims.ExpectPurpose(jwtx.PurposeAccess); err != nil {
		return jwtx.Claims{}, err
	}
	if _, err := idx.Parse(claims.UserID); err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: user_id: %w", jwtx.ErrMalformed, err)
	}
	return claims, nil
}

// IssuePair signs an access token and stores a new refresh token through
// repo, which may be tx-scoped.
func (t *TokenIssuer) IssuePair(ctx context.Context, repo store.RefreshTokens, userID string, now time.Time) (domain.TokenPair, error) {
	access, err := t.Codec.Sign(jwtx.NewClaims(userID, jwtx.PurposeAccess, t.accessTTL(), t.Issuer, now))
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.TokenPair{}, err
	}

	if err := repo.CreateRefreshToken(ctx, domain.RefreshToken{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(refresh),
		ExpiresAt: now.Add(t.refreshTTL()),
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// 256 random bits colliding means the RNG is broken.
			return domain.TokenPair{}, errors.New("refresh token collision")
		}
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{Access: access, Refresh: refresh}, nil
}
