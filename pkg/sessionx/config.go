package sessionx

import (
	"strings"
	"time"
)

// DefaultTTL is the session lifetime used when Config.TTL is zero.
const DefaultTTL = 14 * 24 * time.Hour

// Config is built by the caller and handed to issuers and verifiers. Nothing in
// this package holds a secret outside of a value constructed from a Config.
type Config struct {
	// Secret is the shared HMAC secret. Required.
	Secret string

	// TTL is the lifetime of issued tokens. Zero means DefaultTTL.
	TTL time.Duration

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// Validate reports configuration errors. A missing secret is always fatal.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Secret) == "" {
		return ErrMissingSecret
	}
	if c.TTL != 0 && c.TTL < time.Second {
		return ErrInvalidTTL
	}
	return nil
}

func (c Config) ttl() time.Duration {
	if c.TTL == 0 {
		return DefaultTTL
	}
	return c.TTL
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
