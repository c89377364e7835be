package app

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aussiebroadwan/gearbox/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Issuer:               "gearbox-test",
		SiteURL:              "https://gearbox.test",
		DatabaseFile:         filepath.Join(dir, "account.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		JWTSecretFile:        filepath.Join(dir, "jwt_secret"),
		ResetThrottleMax:     3,
		ResetThrottleWindow:  time.Minute,
		ResetConfirmMax:      3,
		ResetConfirmWindow:   time.Minute,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SITE_URL", "https://app.gearbox.test/")
	t.Setenv("ACCOUNT_ACCESS_TTL", "5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "gearbox-account", cfg.Issuer)
	require.Equal(t, "https://app.gearbox.test", cfg.SiteURL)
	require.Equal(t, 5*time.Minute, cfg.AccessTTL)
	require.Equal(t, 168*time.Hour, cfg.RefreshTTL)
	require.Equal(t, 15*time.Minute, cfg.ResetCodeTTL)
	require.Equal(t, 5, cfg.ResetConfirmMax)
	require.Equal(t, 15*time.Minute, cfg.ResetConfirmWindow)
	require.Equal(t, 8080, cfg.Port)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, cfg.validate())

	cfg.SMTPHost = "smtp.example.com"
	cfg.SMTPFrom = ""
	cfg.ResetThrottleWindow = 0
	cfg.ResetConfirmWindow = 0
	err := cfg.validate()
	require.ErrorContains(t, err, "SMTP_FROM")
	require.ErrorContains(t, err, "ACCOUNT_RESET_THROTTLE_WINDOW")
	require.ErrorContains(t, err, "ACCOUNT_RESET_CONFIRM_WINDOW")
}

func TestNewWiresInMemoryStack(t *testing.T) {
	cfg := testConfig(t)
	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	// Secrets are generated once and reused.
	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err)
	_, err = os.Stat(cfg.JWTSecretFile)
	require.NoError(t, err)

	require.Nil(t, app.redis)
	require.NotNil(t, app.throttle)
	require.NotNil(t, app.confirmThrottle)
	require.Equal(t, app.confirmThrottle, app.passwordResetService.ConfirmThrottle)

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health accountsdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "memory", health.Checks.Cache)
}

func TestNewWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig(t)
	cfg.RedisAddr = mr.Addr()
	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = app.redis.Close()
		_ = app.db.Close()
	})

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"cache":"ok"`)

	mr.Close()
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewFailsWithoutRedis(t *testing.T) {
	cfg := testConfig(t)
	cfg.RedisAddr = "127.0.0.1:1"
	_, err := New(cfg)
	require.ErrorContains(t, err, "redis")
}

func TestRunReleasesResourcesWhenListenFails(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := testConfig(t)
	cfg.Port = busy.Addr().(*net.TCPAddr).Port
	app, err := New(cfg)
	require.NoError(t, err)

	err = app.Run()
	require.ErrorContains(t, err, "server failed")
	require.Error(t, app.db.Ping(context.Background()), "database should be closed")
}
