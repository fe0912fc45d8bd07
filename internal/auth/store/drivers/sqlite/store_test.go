package sqlite_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/goalpost/internal/auth/domain"
	"github.com/aussiebroadwan/goalpost/internal/auth/store"
	"github.com/aussiebroadwan/goalpost/internal/auth/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "goalpost.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func alice() domain.Credential {
	return domain.Credential{
		ID:           "01J9Z6Q7M3X8D2K4V5N6P7R8S9",
		Email:        "Alice@Example.com",
		PasswordHash: "pbkdf2$150000$AAECAwQFBgcICQoLDA0ODw$uIvzrCeJ2uVm3yLnwKnYnXqBffwyaROO8Y3Ol3W4kYE",
		Name:         "Alice",
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(t.Context()))
}

func TestCredentials_CreateAndGet(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	require.NoError(t, s.Credentials().CreateCredential(ctx, alice()))

	byEmail, err := s.Credentials().GetCredentialByEmail(ctx, "  ALICE@example.com ")
	require.NoError(t, err)
	require.Equal(t, "01J9Z6Q7M3X8D2K4V5N6P7R8S9", byEmail.ID)
	require.Equal(t, "alice@example.com", byEmail.Email)
	require.Equal(t, alice().PasswordHash, byEmail.PasswordHash)
	require.False(t, byEmail.CreatedAt.IsZero())

	byID, err := s.Credentials().GetCredentialByID(ctx, byEmail.ID)
	require.NoError(t, err)
	require.Equal(t, byEmail.Email, byID.Email)
}

func TestCredentials_NotFound(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	_, err := s.Credentials().GetCredentialByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Credentials().GetCredentialByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Credentials().UpdateName(ctx, "missing", "x"), store.ErrNotFound)
}

func TestCredentials_DuplicateEmail(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	require.NoError(t, s.Credentials().CreateCredential(ctx, alice()))

	dup := alice()
	dup.ID = "01J9Z6Q7M3X8D2K4V5N6P7R8SA"
	dup.Email = "alice@EXAMPLE.com"
	require.ErrorIs(t, s.Credentials().CreateCredential(ctx, dup), store.ErrAlreadyExists)
}

// Every row has an id, so a session uid always names at most one row.
func TestCredentials_RequiresID(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	noID := alice()
	noID.ID = ""
	require.Error(t, s.Credentials().CreateCredential(ctx, noID))

	_, err := s.Credentials().GetCredentialByEmail(ctx, alice().Email)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCredentials_UpdateName(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	require.NoError(t, s.Credentials().CreateCredential(ctx, alice()))
	require.NoError(t, s.Credentials().UpdateName(ctx, alice().ID, "Alice Liddell"))

	got, err := s.Credentials().GetCredentialByID(ctx, alice().ID)
	require.NoError(t, err)
	require.Equal(t, "Alice Liddell", got.Name)
	require.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Credentials().CreateCredential(ctx, alice()))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Credentials().GetCredentialByEmail(ctx, alice().Email)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Credentials().CreateCredential(ctx, alice())
	}))
	_, err = s.Credentials().GetCredentialByEmail(ctx, alice().Email)
	require.NoError(t, err)
}

func TestTx_NoNesting(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	tx, err := s.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Tx(ctx)
	require.Error(t, err)
}
