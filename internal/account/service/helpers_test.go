package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/cache"
	"github.com/aussiebroadwan/gearbox/internal/account/domain"
	"github.com/aussiebroadwan/gearbox/internal/account/store"
	"github.com/aussiebroadwan/gearbox/internal/account/store/drivers/sqlite"
	"github.com/aussiebroadwan/gearbox/pkg/cryptox"
	"github.com/aussiebroadwan/gearbox/pkg/idx"
	"github.com/aussiebroadwan/gearbox/pkg/jwtx"
	"github.com/aussiebroadwan/gearbox/pkg/mailx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "gearbox-test"
	testSiteURL = "https://gearbox.test"
	testPass    = "secret123"
)

type fixture struct {
	store  *sqlite.Store
	mail   *mailx.Memory
	hasher cryptox.PasswordHasher
	tokens *TokenIssuer
	codec  *jwtx.HS256
	revs   *cache.MemoryRevocations
	now    time.Time

	registration *RegistrationService
	verification *VerificationService
	login        *LoginService
	reset        *PasswordResetService
	session      *SessionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	codec, err := jwtx.NewHS256([]byte("test-secret-test-secret-test-secret"), testIssuer)
	require.NoError(t, err)

	f := &fixture{
		store:  st,
		mail:   &mailx.Memory{},
		hasher: cryptox.PasswordHasher{Pepper: "pepper"},
		codec:  codec,
		revs:   cache.NewMemoryRevocations(),
		now:    time.Now().UTC(),
	}
	f.tokens = &TokenIssuer{Codec: codec, Issuer: testIssuer}
	clock := Clock(func() time.Time { return f.now })

	f.registration = &RegistrationService{Store: st, Hasher: f.hasher, Tokens: f.tokens, Mailer: f.mail, SiteURL: testSiteURL, Clock: clock}
	f.verification = &VerificationService{Store: st, Tokens: f.tokens, Mailer: f.mail, SiteURL: testSiteURL, Clock: clock}
	f.login = &LoginService{Store: st, Hasher: f.hasher, Tokens: f.tokens, Clock: clock}
	f.reset = &PasswordResetService{Store: st, Hasher: f.hasher, Mailer: f.mail, Clock: clock}
	f.session = &SessionService{Store: st, Tokens: f.tokens, Revocations: f.revs, Clock: clock}
	return f
}

func (f *fixture) register(t *testing.T, email string) {
	t.Helper()
	_, err := f.registration.Register(context.Background(), RegisterInput{
		Email: email, Password: testPass, ConfirmPassword: testPass, FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)
}

// verificationToken pulls the token out of the last link mailed to email.
func (f *fixture) verificationToken(t *testing.T, email string) string {
	t.Helper()
	msg, ok := f.mail.Last(email)
	require.True(t, ok, "no mail for %s", email)

	i := strings.Index(msg.Body, testSiteURL+"/verify-email?")
	require.GreaterOrEqual(t, i, 0, "no link in %q", msg.Body)
	u, err := url.Parse(strings.TrimSpace(msg.Body[i:]))
	require.NoError(t, err)
	return u.Query().Get("token")
}

var codeRE = regexp.MustCompile(`\b\d{6}\b`)

func (f *fixture) resetCode(t *testing.T, email string) string {
	t.Helper()
	msg, ok := f.mail.Last(email)
	require.True(t, ok, "no mail for %s", email)
	require.Equal(t, "Reset Password Code", msg.Subject)
	code := codeRE.FindString(msg.Body)
	require.NotEmpty(t, code)
	return code
}

// registerVerified creates an active, verified user and returns it.
func (f *fixture) registerVerified(t *testing.T, email string) domain.User {
	t.Helper()
	f.register(t, email)
	_, err := f.verification.Verify(context.Background(), f.verificationToken(t, email))
	require.NoError(t, err)
	return f.user(t, email)
}

func (f *fixture) user(t *testing.T, email string) domain.User {
	t.Helper()
	u, err := f.store.Users().GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	return u
}

func (f *fixture) insertUser(t *testing.T, email string, active, verified bool) domain.User {
	t.Helper()
	hash, err := f.hasher.Hash(testPass)
	require.NoError(t, err)
	u := domain.User{
		ID: idx.New().String(), Email: email, PasswordHash: hash,
		IsActive: active, IsVerified: verified, CreatedAt: f.now, UpdatedAt: f.now,
	}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	return u
}

func requireKind(t *testing.T, err error, kind Kind, msg string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "error: %v", err)
	if msg != "" {
		require.Equal(t, msg, MessageOf(err))
	}
}

// blindStore hides existing users from GetUserByEmail so the duplicate check
// falls through to the unique index, like a racing registration would.
type blindStore struct {
	store.Store
}

func (b blindStore) Users() store.Users { return blindUsers{b.Store.Users()} }

type blindUsers struct {
	store.Users
}

func (blindUsers) GetUserByEmail(context.Context, string) (domain.User, error) {
	return domain.User{}, store.ErrNotFound
}
