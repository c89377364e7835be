package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/gearbox/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestVerifyIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.register(t, "v@example.com")
	token := f.verificationToken(t, "v@example.com")

	msg, err := f.verification.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, MsgEmailVerified, msg)

	after := f.user(t, "v@example.com")
	require.True(t, after.IsActive)
	require.True(t, after.IsVerified)

	f.now = f.now.Add(time.Minute)
	msg, err = f.verification.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, MsgAlreadyVerified, msg)
	require.True(t, after.UpdatedAt.Equal(f.user(t, "v@example.com").UpdatedAt), "second verify must not write")
}

func TestVerifyExpiredTokenNeverMutates(t *testing.T) {
	f := newFixture(t)
	f.register(t, "late@example.com")
	u := f.user(t, "late@example.com")

	expired, err := f.tokens.VerificationToken(u.ID, time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	_, err = f.verification.Verify(context.Background(), expired)
	requireKind(t, err, KindToken, MsgVerificationExpired)
	require.False(t, f.user(t, "late@example.com").IsVerified)
}

func TestVerifyRejectsInvalidTokens(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bad@example.com")
	u := f.user(t, "bad@example.com")
	now := time.Now()

	access, err := f.codec.Sign(jwtx.NewClaims(u.ID, jwtx.PurposeAccess, time.Hour, testIssuer, now))
	require.NoError(t, err)

	other, err := jwtx.NewHS256([]byte("another-secret-another-secret-xx"), testIssuer)
	require.NoError(t, err)
	forged, err := other.Sign(jwtx.NewClaims(u.ID, jwtx.PurposeEmailVerification, time.Hour, testIssuer, now))
	require.NoError(t, err)

	ghost, err := f.tokens.VerificationToken("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", now)
	require.NoError(t, err)

	notAnID, err := f.tokens.VerificationToken("'; drop table users; --", now)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "abc.def.ghi",
		"wrong type":   access,
		"bad sig":      forged,
		"unknown user": ghost,
		"bad user id":  notAnID,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.verification.Verify(context.Background(), token)
			requireKind(t, err, KindToken, MsgVerificationInvalid)
		})
	}
	require.False(t, f.user(t, "bad@example.com").IsVerified)

	_, err = f.verification.Verify(context.Background(), "  ")
	requireKind(t, err, KindValidation, MsgTokenRequired)
}

func TestResendVerification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "resend@example.com")

	msg, err := f.verification.Resend(ctx, "RESEND@example.com")
	require.NoError(t, err)
	require.Equal(t, MsgVerificationSent, msg)
	require.Len(t, f.mail.Sent(), 2)

	_, err = f.verification.Verify(ctx, f.verificationToken(t, "resend@example.com"))
	require.NoError(t, err)

	msg, err = f.verification.Resend(ctx, "resend@example.com")
	require.NoError(t, err)
	require.Equal(t, MsgAlreadyVerified, msg)
	require.Len(t, f.mail.Sent(), 2)

	_, err = f.verification.Resend(ctx, "nobody@example.com")
	requireKind(t, err, KindNotFound, MsgUserNotFound)

	_, err = f.verification.Resend(ctx, "")
	requireKind(t, err, KindValidation, MsgEmailRequired)
}
