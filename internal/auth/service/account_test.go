package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/goalpost/internal/auth/domain"
	"github.com/aussiebroadwan/goalpost/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/idx"
	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

const testSecret = "service-test-secret"

type harness struct {
	svc      *AccountService
	store    *sqlite.Store
	verifier *sessionx.NativeVerifier
	outcomes []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	cfg := sessionx.Config{Secret: testSecret, TTL: time.Hour}
	issuer, err := sessionx.NewIssuer(cfg, nil)
	require.NoError(t, err)
	v, err := sessionx.NewNativeVerifier(cfg)
	require.NoError(t, err)

	h := &harness{store: st, verifier: v}
	h.svc = &AccountService{
		Store:           st,
		Issuer:          issuer,
		OnPasswordCheck: func(o string) { h.outcomes = append(h.outcomes, o) },
	}
	return h
}

func TestSignup(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()

	sess, err := h.svc.Signup(ctx, authsdk.SignupRequest{
		Email:    "  Alice@Example.com ",
		Password: "correct horse",
		Name:     " Alice ",
	})
	require.NoError(t, err)

	_, err = idx.Parse(sess.Identity.ID)
	require.NoError(t, err, "uid is a ulid")
	require.Equal(t, "alice@example.com", sess.Identity.Email)
	require.Equal(t, "Alice", sess.Identity.Name)

	got, err := h.verifier.Verify(sess.Token)
	require.NoError(t, err)
	require.Equal(t, sess.Identity, *got)

	cred, err := h.store.Credentials().GetCredentialByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotContains(t, cred.PasswordHash, "correct horse")
	require.Regexp(t, `^pbkdf2\$150000\$`, cred.PasswordHash)
}

func TestSignup_Rejects(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()

	_, err := h.svc.Signup(ctx, authsdk.SignupRequest{Email: "alice", Password: "short"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Details, "email")
	require.Contains(t, verr.Details, "password")

	_, err = h.svc.Signup(ctx, authsdk.SignupRequest{Email: "bob@example.com", Password: "password1"})
	require.NoError(t, err)
	_, err = h.svc.Signup(ctx, authsdk.SignupRequest{Email: "BOB@example.com", Password: "password2"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()

	created, err := h.svc.Signup(ctx, authsdk.SignupRequest{Email: "carol@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	sess, err := h.svc.Login(ctx, "Carol@Example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, created.Identity, sess.Identity)

	_, err = h.svc.Login(ctx, "carol@example.com", "hunter3hunter3")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = h.svc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.Equal(t, []string{PasswordOK, PasswordMismatch, PasswordUnknown}, h.outcomes)
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()

	require.NoError(t, h.store.Credentials().CreateCredential(ctx, domain.Credential{
		ID:           idx.New().String(),
		Email:        "dave@example.com",
		PasswordHash: "pbkdf2$1$AAAA$AAAA",
	}))

	_, err := h.svc.Login(ctx, "dave@example.com", "whatever1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, []string{PasswordCorrupt}, h.outcomes)
}

func TestUpdateName(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()

	created, err := h.svc.Signup(ctx, authsdk.SignupRequest{Email: "erin@example.com", Password: "password1"})
	require.NoError(t, err)
	require.Empty(t, created.Identity.Name)

	sess, err := h.svc.UpdateName(ctx, created.Identity, "  Erin ")
	require.NoError(t, err)
	require.Equal(t, "Erin", sess.Identity.Name)

	got, err := h.verifier.Verify(sess.Token)
	require.NoError(t, err)
	require.Equal(t, "Erin", got.Name)

	_, err = h.svc.UpdateName(ctx, created.Identity, "   ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = h.svc.UpdateName(ctx, sessionx.Identity{ID: "gone", Email: "gone@example.com"}, "Ghost")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// A session whose uid is the email, as issued by the email fallback, still
// reaches its row, and the reissued token carries the real id.
func TestUpdateName_EmailFallbackSession(t *testing.T) {
	h := newHarness(t)
	ctx := t.Context()

	created, err := h.svc.Signup(ctx, authsdk.SignupRequest{Email: "frank@example.com", Password: "password1"})
	require.NoError(t, err)

	legacy := sessionx.Identity{ID: "frank@example.com", Email: "frank@example.com"}
	sess, err := h.svc.UpdateName(ctx, legacy, "Frank")
	require.NoError(t, err)
	require.Equal(t, created.Identity.ID, sess.Identity.ID)
	require.Equal(t, "Frank", sess.Identity.Name)

	_, err = h.svc.UpdateName(ctx, sessionx.Identity{ID: "nobody@example.com", Email: "nobody@example.com"}, "Ghost")
	require.ErrorIs(t, err, ErrAccountNotFound)
}
