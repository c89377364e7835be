package account_test

import (
	"testing"

	"github.com/aussiebroadwan/gearbox/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	svc, cleanup := setupAccountContainer(t)
	defer cleanup()

	health, err := accountsdk.NewClient(svc.BaseURL).GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check reports the database and
// the in-process cache.
func TestReadyzEndpoint(t *testing.T) {
	svc, cleanup := setupAccountContainer(t)
	defer cleanup()

	health, err := accountsdk.NewClient(svc.BaseURL).GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "memory", health.Checks.Cache)
}
