package sessionx

import "strings"

// Identity is the authenticated principal carried by a session token.
type Identity struct {
	ID    string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (i Identity) Normalize() Identity {
	return Identity{
		ID:    strings.TrimSpace(i.ID),
		Email: strings.TrimSpace(i.Email),
		Name:  strings.TrimSpace(i.Name),
	}
}

// Validate requires a non-empty id and email after normalization.
func (i Identity) Validate() error {
	n := i.Normalize()
	if n.ID == "" || n.Email == "" {
		return ErrInvalidIdentity
	}
	return nil
}
