package sqlite

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/goalpost/internal/auth/domain"
	"github.com/aussiebroadwan/goalpost/internal/auth/store"
	"github.com/aussiebroadwan/goalpost/internal/auth/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type credentialsRepo struct {
	q *gen.Queries
}

func (r *credentialsRepo) GetCredentialByEmail(ctx context.Context, email string) (domain.Credential, error) {
	row, err := r.q.GetCredentialByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	return mapCredential(row), nil
}

func (r *credentialsRepo) GetCredentialByID(ctx context.Context, id string) (domain.Credential, error) {
	row, err := r.q.GetCredentialByID(ctx, id)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	return mapCredential(row), nil
}

func (r *credentialsRepo) CreateCredential(ctx context.Context, c domain.Credential) error {
	err := r.q.CreateCredential(ctx, gen.CreateCredentialParams{
		ID:           c.ID,
		Email:        domain.NormalizeEmail(c.Email),
		PasswordHash: c.PasswordHash,
		Name:         c.Name,
		Now:          now(),
	})
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *credentialsRepo) UpdateName(ctx context.Context, id, name string) error {
	n, err := r.q.UpdateCredentialName(ctx, gen.UpdateCredentialNameParams{
		Name: name,
		Now:  now(),
		ID:   id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
