package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/goalpost/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Repositories hang off it so a
// transaction exposes the same surface as the store.
type Store interface {
	Credentials() Credentials

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Credentials interface {
	// GetCredentialByEmail looks up a login by normalized email.
	GetCredentialByEmail(ctx context.Context, email string) (domain.Credential, error)

	GetCredentialByID(ctx context.Context, id string) (domain.Credential, error)

	// CreateCredential inserts a record. A taken email is ErrAlreadyExists.
	CreateCredential(ctx context.Context, c domain.Credential) error

	// UpdateName sets the display name and bumps updated_at.
	UpdateName(ctx context.Context, id, name string) error
}
