package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	for _, k := range []string{"SESSION_TTL", "SESSION_BACKEND", "SESSION_COOKIE_NAME", "GATEWAY_PREFIXES", "LOGIN_PATH", "ENV", "PORT"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 14*24*time.Hour, cfg.SessionTTL)
	require.Equal(t, sessionx.BackendAuto, cfg.SessionBackend)
	require.Equal(t, "session", cfg.CookieName)
	require.Equal(t, []string{"/app/"}, cfg.GatewayPrefixes)
	require.Equal(t, "/login", cfg.LoginPath)
	require.Equal(t, 8080, cfg.Port)
	require.False(t, cfg.SecureCookies())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "90")
	t.Setenv("SESSION_BACKEND", "EDGE")
	t.Setenv("GATEWAY_PREFIXES", "/app/, /admin/ ,,/app/")
	t.Setenv("ENV", "prod")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 90*time.Minute, cfg.SessionTTL)
	require.Equal(t, sessionx.BackendEdge, cfg.SessionBackend)
	require.Equal(t, []string{"/app/", "/admin/"}, cfg.GatewayPrefixes)
	require.True(t, cfg.SecureCookies())
}

func TestConfigValidate(t *testing.T) {
	t.Setenv("SESSION_SECRET", "   ")
	t.Setenv("SESSION_BACKEND", "gpu")
	t.Setenv("GATEWAY_PREFIXES", "/")
	t.Setenv("SESSION_TTL", "500ms")

	err := LoadConfig().Validate()
	require.ErrorIs(t, err, sessionx.ErrMissingSecret)
	require.ErrorIs(t, err, sessionx.ErrUnknownBackend)
	require.ErrorIs(t, err, sessionx.ErrInvalidTTL)
	require.ErrorContains(t, err, "GATEWAY_PREFIXES")
}
