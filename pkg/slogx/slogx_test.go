package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/gearbox/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, slogx.ParseLevel(in), "level %q", in)
	}
}

func TestNewWritesServiceAttrs(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "account", Version: "test", Env: "prod", Level: "info", Output: &buf})
	logger.Debug("hidden")
	logger.Info("hello")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "account", rec["service"])
	require.Equal(t, "prod", rec["env"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), slogx.FromContext(context.Background()))

	l := slogx.Discard()
	ctx := slogx.WithContext(context.Background(), l)
	require.Same(t, l, slogx.FromContext(ctx))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var sawLogger *slog.Logger
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = slogx.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Len(t, rec.Header().Get(slogx.RequestIDHeader), 26)
		require.NotSame(t, base, sawLogger)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "http_request", entry["msg"])
		require.EqualValues(t, http.StatusTeapot, entry["status"])
		require.Equal(t, rec.Header().Get(slogx.RequestIDHeader), entry["req_id"])
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/livez", nil)
		req.Header.Set(slogx.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "abc-123", rec.Header().Get(slogx.RequestIDHeader))
		require.Contains(t, buf.String(), `"req_id":"abc-123"`)
	})
}
