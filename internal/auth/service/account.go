package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/aussiebroadwan/goalpost/internal/auth/domain"
	"github.com/aussiebroadwan/goalpost/internal/auth/store"
	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/cryptox"
	"github.com/aussiebroadwan/goalpost/pkg/idx"
	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
	"github.com/aussiebroadwan/goalpost/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrAccountNotFound    = errors.New("account_not_found")
)

// ValidationError carries per-field reasons from the shared request types.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string { return "validation_error" }

// Password check outcomes reported to OnPasswordCheck.
const (
	PasswordOK       = "ok"
	PasswordMismatch = "mismatch"
	PasswordUnknown  = "unknown_account"
	PasswordCorrupt  = "malformed_hash"
)

// Session is a freshly issued token and the identity inside it.
type Session struct {
	Token    string
	Identity sessionx.Identity
}

type AccountService struct {
	Store  store.Store
	Issuer *sessionx.Issuer

	// OnPasswordCheck, if set, receives the outcome of every login attempt.
	OnPasswordCheck func(outcome string)
}

// dummyHash is verified against when the email is unknown, so a miss costs
// the same as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword("goalpost-timing-equaliser")
	if err != nil {
		panic(err)
	}
	return h
})

// Signup creates a credential and returns its first session.
func (s *AccountService) Signup(ctx context.Context, req authsdk.SignupRequest) (Session, error) {
	l := slogx.FromContext(ctx)

	if details := req.Validate(); details != nil {
		return Session{}, &ValidationError{Details: details}
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return Session{}, err
	}

	cred := domain.Credential{
		ID:           idx.New().String(),
		Email:        domain.NormalizeEmail(req.Email),
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Credentials().CreateCredential(ctx, cred)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return Session{}, ErrEmailTaken
	}
	if err != nil {
		return Session{}, err
	}

	l.Info("account created", slog.String("uid", cred.ID))
	return s.issue(ctx, cred)
}

// Login checks a password and issues a session. Unknown email and wrong
// password are the same error.
func (s *AccountService) Login(ctx context.Context, email, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	cred, err := s.Store.Credentials().GetCredentialByEmail(ctx, domain.NormalizeEmail(email))
	switch {
	case errors.Is(err, store.ErrNotFound):
		_ = cryptox.CheckPassword(password, dummyHash())
		s.observe(PasswordUnknown)
		return Session{}, ErrInvalidCredentials
	case err != nil:
		return Session{}, err
	}

	if err := cryptox.CheckPassword(password, cred.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMalformedHash) {
			// A corrupt record is an operator problem, but the caller still
			// only learns that login failed.
			l.Error("stored password hash is malformed", slog.String("uid", cred.ID))
			s.observe(PasswordCorrupt)
		} else {
			s.observe(PasswordMismatch)
		}
		return Session{}, ErrInvalidCredentials
	}

	s.observe(PasswordOK)
	return s.issue(ctx, cred)
}

// UpdateName changes the display name of the account behind id and issues a
// token carrying it.
func (s *AccountService) UpdateName(ctx context.Context, id sessionx.Identity, name string) (Session, error) {
	if details := (authsdk.UpdateProfileRequest{Name: name}).Validate(); details != nil {
		return Session{}, &ValidationError{Details: details}
	}
	name = strings.TrimSpace(name)

	var cred domain.Credential
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rowID := id.ID
		if rowID == domain.NormalizeEmail(id.Email) {
			// Sessions minted with the email fallback carry no row id.
			c, err := tx.Credentials().GetCredentialByEmail(ctx, rowID)
			if err != nil {
				return err
			}
			rowID = c.ID
		}

		if err := tx.Credentials().UpdateName(ctx, rowID, name); err != nil {
			return err
		}
		var err error
		cred, err = tx.Credentials().GetCredentialByID(ctx, rowID)
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return Session{}, ErrAccountNotFound
	}
	if err != nil {
		return Session{}, err
	}

	return s.issue(ctx, cred)
}

func (s *AccountService) issue(ctx context.Context, cred domain.Credential) (Session, error) {
	id := cred.Identity()
	tok, err := s.Issuer.Issue(ctx, id)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: tok, Identity: id}, nil
}

func (s *AccountService) observe(outcome string) {
	if s.OnPasswordCheck != nil {
		s.OnPasswordCheck(outcome)
	}
}
