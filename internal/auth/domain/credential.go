package domain

import (
	"strings"
	"time"

	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
)

// Credential is a stored login: who the user is and how to check their
// password. The plaintext password never reaches this type.
type Credential struct {
	ID           string
	Email        string // normalized, unique
	PasswordHash string // pbkdf2$iter$salt$key
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lower-cases an address so lookups and the unique
// index agree.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Identity is the session view of the credential. Records created before ids
// were assigned use their email as the uid.
func (c Credential) Identity() sessionx.Identity {
	uid := strings.TrimSpace(c.ID)
	if uid == "" {
		uid = NormalizeEmail(c.Email)
	}
	return sessionx.Identity{
		ID:    uid,
		Email: NormalizeEmail(c.Email),
		Name:  strings.TrimSpace(c.Name),
	}
}
