package gen

import (
	"context"
	"database/sql"
	"time"
)

type Credential struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const credentialColumns = `id, email, password_hash, name, created_at, updated_at`

func scanCredential(row *sql.Row) (Credential, error) {
	var c Credential
	err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getCredentialByEmail = `SELECT ` + credentialColumns + ` FROM credentials WHERE email = ?`

func (q *Queries) GetCredentialByEmail(ctx context.Context, email string) (Credential, error) {
	return scanCredential(q.db.QueryRowContext(ctx, getCredentialByEmail, email))
}

const getCredentialByID = `SELECT ` + credentialColumns + ` FROM credentials WHERE id = ?`

func (q *Queries) GetCredentialByID(ctx context.Context, id string) (Credential, error) {
	return scanCredential(q.db.QueryRowContext(ctx, getCredentialByID, id))
}

const createCredential = `INSERT INTO credentials (` + credentialColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

type CreateCredentialParams struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Now          time.Time
}

func (q *Queries) CreateCredential(ctx context.Context, arg CreateCredentialParams) error {
	_, err := q.db.ExecContext(ctx, createCredential,
		arg.ID, arg.Email, arg.PasswordHash, arg.Name, arg.Now, arg.Now)
	return err
}

const updateCredentialName = `UPDATE credentials SET name = ?, updated_at = ? WHERE id = ?`

type UpdateCredentialNameParams struct {
	Name string
	Now  time.Time
	ID   string
}

// UpdateCredentialName returns the number of rows touched.
func (q *Queries) UpdateCredentialName(ctx context.Context, arg UpdateCredentialNameParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateCredentialName, arg.Name, arg.Now, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
