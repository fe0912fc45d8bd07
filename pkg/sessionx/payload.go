package sessionx

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Payload is the signed body of a session token.
type Payload struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

func newPayload(id Identity, now time.Time, ttl time.Duration) Payload {
	iat := now.Unix()
	return Payload{
		UID:       id.ID,
		Email:     id.Email,
		Name:      id.Name,
		IssuedAt:  iat,
		ExpiresAt: iat + int64(ttl/time.Second),
	}
}

// Identity rebuilds the principal from the payload.
func (p Payload) Identity() Identity {
	return Identity{
		ID:    p.UID,
		Email: p.Email,
		Name:  strings.TrimSpace(p.Name),
	}
}

// ParsePayload decodes and validates a payload field by field. Keys are
// matched exactly; a key that differs only in case is an unknown field and is
// ignored like any other.
func ParsePayload(data []byte) (Payload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var p Payload
	var hasIAT, hasEXP bool
	var err error

	if _, err = claim(fields, "uid", &p.UID); err != nil {
		return Payload{}, err
	}
	if strings.TrimSpace(p.UID) == "" {
		return Payload{}, fmt.Errorf("%w: uid", ErrInvalidClaims)
	}
	if _, err = claim(fields, "email", &p.Email); err != nil {
		return Payload{}, err
	}
	if strings.TrimSpace(p.Email) == "" {
		return Payload{}, fmt.Errorf("%w: email", ErrInvalidClaims)
	}
	if _, err = claim(fields, "name", &p.Name); err != nil {
		return Payload{}, err
	}
	if hasIAT, err = claim(fields, "iat", &p.IssuedAt); err != nil {
		return Payload{}, err
	}
	if !hasIAT {
		return Payload{}, fmt.Errorf("%w: iat", ErrInvalidClaims)
	}
	if hasEXP, err = claim(fields, "exp", &p.ExpiresAt); err != nil {
		return Payload{}, err
	}
	if !hasEXP || p.ExpiresAt <= p.IssuedAt {
		return Payload{}, fmt.Errorf("%w: exp", ErrInvalidClaims)
	}

	return p, nil
}

// claim decodes fields[key] into dst. A missing key or a JSON null reports
// false and leaves dst untouched; a value of the wrong type is malformed.
func claim(fields map[string]json.RawMessage, key string, dst any) (bool, error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// CheckExpiry rejects a payload whose exp is at or before now.
func (p Payload) CheckExpiry(now time.Time) error {
	if p.ExpiresAt <= now.Unix() {
		return ErrExpired
	}
	return nil
}
