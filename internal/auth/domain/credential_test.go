package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/goalpost/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", domain.NormalizeEmail("  Alice@Example.COM\n"))
	require.Equal(t, "", domain.NormalizeEmail("   "))
}

func TestCredentialIdentity(t *testing.T) {
	t.Run("uses id", func(t *testing.T) {
		id := domain.Credential{ID: "01J9Z6Q7M3X8D2K4V5N6P7R8S9", Email: "Alice@Example.com", Name: " Alice "}.Identity()
		require.Equal(t, "01J9Z6Q7M3X8D2K4V5N6P7R8S9", id.ID)
		require.Equal(t, "alice@example.com", id.Email)
		require.Equal(t, "Alice", id.Name)
		require.NoError(t, id.Validate())
	})

	t.Run("falls back to email", func(t *testing.T) {
		id := domain.Credential{Email: "legacy@example.com"}.Identity()
		require.Equal(t, "legacy@example.com", id.ID)
		require.Equal(t, id.ID, id.Email)
		require.Empty(t, id.Name)
	})
}
