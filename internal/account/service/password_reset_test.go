package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/cache"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/pkg/cryptox"
	"github.com/aussiebroadwan/gearbox/pkg/mailx"
	"github.com/stretchr/testify/require"
)

const newPass = "brand-new-pass"

func TestResetRequestUnknownEmail(t *testing.T) {
	f := newFixture(t)
	err := f.reset.Request(context.Background(), "nobody@example.com")
	requireKind(t, err, KindNotFound, MsgUserNotFound)
	require.Empty(t, f.mail.Sent())

	err = f.reset.Request(context.Background(), " ")
	requireKind(t, err, KindValidation, MsgEmailRequired)
}

func TestResetCodeIsSingleUse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "r@example.com")

	require.NoError(t, f.reset.Request(ctx, "r@example.com"))
	code := f.resetCode(t, "r@example.com")

	in := ConfirmResetInput{Email: "r@example.com", Code: code, NewPassword: newPass}
	require.NoError(t, f.reset.Confirm(ctx, in))

	_, err := f.login.Login(ctx, "r@example.com", testPass)
	requireKind(t, err, KindAuth, MsgInvalidLogin)
	_, err = f.login.Login(ctx, "r@example.com", newPass)
	require.NoError(t, err)

	in.NewPassword = "yet-another-pass"
	err = f.reset.Confirm(ctx, in)
	requireKind(t, err, KindToken, MsgInvalidResetCode)
}

func TestResetCodeOutsideWindow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "slow@example.com")

	require.NoError(t, f.reset.Request(ctx, "slow@example.com"))
	code := f.resetCode(t, "slow@example.com")

	// Exactly at expiry the code still works; one second later it does not.
	f.now = f.now.Add(DefaultResetCodeTTL + time.Second)
	err := f.reset.Confirm(ctx, ConfirmResetInput{Email: "slow@example.com", Code: code, NewPassword: newPass})
	requireKind(t, err, KindToken, MsgResetCodeExpired)

	_, err = f.login.Login(ctx, "slow@example.com", testPass)
	require.NoError(t, err, "password must be unchanged")
}

func TestResetCodeAtExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "edge@example.com")

	require.NoError(t, f.reset.Request(ctx, "edge@example.com"))
	code := f.resetCode(t, "edge@example.com")

	f.now = f.now.Add(DefaultResetCodeTTL)
	require.NoError(t, f.reset.Confirm(ctx, ConfirmResetInput{Email: "edge@example.com", Code: code, NewPassword: newPass}))
}

func TestResetConfirmFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "c@example.com")
	require.NoError(t, f.reset.Request(ctx, "c@example.com"))
	code := f.resetCode(t, "c@example.com")

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	cases := []struct {
		name string
		in   ConfirmResetInput
		kind Kind
		msg  string
	}{
		{"missing", ConfirmResetInput{Email: "c@example.com", Code: code}, KindValidation, MsgResetFieldsRequired},
		{"short password", ConfirmResetInput{Email: "c@example.com", Code: code, NewPassword: "short"}, KindValidation, MsgPasswordTooShort},
		{"unknown email", ConfirmResetInput{Email: "ghost@example.com", Code: code, NewPassword: newPass}, KindNotFound, MsgUserNotFound},
		{"wrong code", ConfirmResetInput{Email: "c@example.com", Code: wrong, NewPassword: newPass}, KindToken, MsgInvalidResetCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireKind(t, f.reset.Confirm(ctx, tc.in), tc.kind, tc.msg)
		})
	}

	// The real code survived all of the above.
	require.NoError(t, f.reset.Confirm(ctx, ConfirmResetInput{Email: "c@example.com", Code: code, NewPassword: newPass}))
}

func TestResetRequestReplacesOlderCodes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "twice@example.com")

	require.NoError(t, f.reset.Request(ctx, "twice@example.com"))
	first := f.resetCode(t, "twice@example.com")
	require.NoError(t, f.reset.Request(ctx, "twice@example.com"))
	second := f.resetCode(t, "twice@example.com")

	if first != second {
		err := f.reset.Confirm(ctx, ConfirmResetInput{Email: "twice@example.com", Code: first, NewPassword: newPass})
		requireKind(t, err, KindToken, MsgInvalidResetCode)
	}
	require.NoError(t, f.reset.Confirm(ctx, ConfirmResetInput{Email: "twice@example.com", Code: second, NewPassword: newPass}))
}

func TestResetRevokesRefreshTokens(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "rev@example.com")

	pair, err := f.login.Login(ctx, "rev@example.com", testPass)
	require.NoError(t, err)

	require.NoError(t, f.reset.Request(ctx, "rev@example.com"))
	require.NoError(t, f.reset.Confirm(ctx, ConfirmResetInput{
		Email: "rev@example.com", Code: f.resetCode(t, "rev@example.com"), NewPassword: newPass,
	}))

	rt, err := f.store.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(pair.Refresh))
	require.NoError(t, err)
	require.True(t, rt.Revoked)

	_, err = f.session.Refresh(ctx, pair.Refresh)
	requireKind(t, err, KindAuth, MsgInvalidRefresh)
}

func TestResetRequestThrottle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "spam@example.com")
	f.reset.Throttle = cache.NewMemoryThrottle(cache.ThrottleConfig{Window: time.Minute, MaxAttempts: 2})

	require.NoError(t, f.reset.Request(ctx, "spam@example.com"))
	require.NoError(t, f.reset.Request(ctx, "SPAM@example.com"))
	requireKind(t, f.reset.Request(ctx, "spam@example.com"), KindRateLimited, MsgTooManyResets)
}

func TestResetRequestMailFailure(t *testing.T) {
	f := newFixture(t)
	f.registerVerified(t, "m@example.com")
	f.mail.Err = mailx.ErrPermanent

	err := f.reset.Request(context.Background(), "m@example.com")
	requireKind(t, err, KindInternal, MsgInternal)
	require.ErrorIs(t, err, mailx.ErrPermanent)
}

func TestResetConfirmGuessesAreCapped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "target@example.com")
	f.reset.ConfirmThrottle = cache.NewMemoryThrottle(cache.ThrottleConfig{Window: time.Minute, MaxAttempts: 3})

	require.NoError(t, f.reset.Request(ctx, "target@example.com"))
	code := f.resetCode(t, "target@example.com")

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	for range 3 {
		err := f.reset.Confirm(ctx, ConfirmResetInput{Email: "target@example.com", Code: wrong, NewPassword: newPass})
		requireKind(t, err, KindToken, MsgInvalidResetCode)
	}

	// The next attempt is refused even with the right code, and the code is gone.
	err := f.reset.Confirm(ctx, ConfirmResetInput{Email: "TARGET@example.com", Code: code, NewPassword: newPass})
	requireKind(t, err, KindRateLimited, MsgTooManyResetGuesses)

	f.reset.ConfirmThrottle = nil
	err = f.reset.Confirm(ctx, ConfirmResetInput{Email: "target@example.com", Code: code, NewPassword: newPass})
	requireKind(t, err, KindToken, MsgInvalidResetCode)

	_, err = f.login.Login(ctx, "target@example.com", testPass)
	require.NoError(t, err, "password must be unchanged")
}

func TestResetThrottlesAreSeparate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "both@example.com")
	shared := cache.NewMemoryThrottle(cache.ThrottleConfig{Window: time.Minute, MaxAttempts: 1})
	f.reset.Throttle = shared
	f.reset.ConfirmThrottle = shared

	require.NoError(t, f.reset.Request(ctx, "both@example.com"))
	code := f.resetCode(t, "both@example.com")
	require.NoError(t, f.reset.Confirm(ctx, ConfirmResetInput{Email: "both@example.com", Code: code, NewPassword: newPass}))
}

type brokenThrottle struct{}

func (brokenThrottle) Hit(context.Context, string) error { return cache.ErrUnavailable }

func TestResetConfirmThrottleFailsClosed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.registerVerified(t, "closed@example.com")
	require.NoError(t, f.reset.Request(ctx, "closed@example.com"))
	code := f.resetCode(t, "closed@example.com")

	f.reset.ConfirmThrottle = brokenThrottle{}
	err := f.reset.Confirm(ctx, ConfirmResetInput{Email: "closed@example.com", Code: code, NewPassword: newPass})
	requireKind(t, err, KindInternal, MsgInternal)
	require.ErrorIs(t, err, cache.ErrUnavailable)

	// Requests still go through when their throttle is down.
	f.reset.Throttle = brokenThrottle{}
	require.NoError(t, f.reset.Request(ctx, "closed@example.com"))
}

func TestResetCodeStoredKeyed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.registerVerified(t, "keyed@example.com")
	require.NoError(t, f.reset.Request(ctx, "keyed@example.com"))
	code := f.resetCode(t, "keyed@example.com")

	_, err := f.store.ResetCodes().GetResetCode(ctx, u.ID, cryptox.FingerprintToken(code))
	require.ErrorIs(t, err, store.ErrNotFound, "a bare hash of the code must not match")

	rc, err := f.store.ResetCodes().GetResetCode(ctx, u.ID, cryptox.KeyedFingerprint(f.hasher.Pepper, code))
	require.NoError(t, err)
	require.Equal(t, u.ID, rc.UserID)
}
