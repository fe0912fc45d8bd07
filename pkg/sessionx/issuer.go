package sessionx

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Issuer mints session tokens.
type Issuer struct {
	cfg    Config
	signer Signer
	codec  NativeCodec
}

// NewIssuer validates cfg and binds it to signer. A nil signer means the
// native HMAC signer for cfg.Secret.
func NewIssuer(cfg Config, signer Signer) (*Issuer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if signer == nil {
		s, err := NewHMACSigner(cfg.Secret)
		if err != nil {
			return nil, err
		}
		signer = s
	}
	return &Issuer{cfg: cfg, signer: signer}, nil
}

// TTL returns the lifetime given to issued tokens.
func (is *Issuer) TTL() time.Duration {
	return is.cfg.ttl()
}

// Issue returns "<payload>.<signature>" for id. The identity is trimmed and
// must carry an id and an email; the name is only embedded when non-empty.
func (is *Issuer) Issue(ctx context.Context, id Identity) (string, error) {
	id = id.Normalize()
	if err := id.Validate(); err != nil {
		return "", err
	}

	data, err := json.Marshal(newPayload(id, is.cfg.now(), is.cfg.ttl()))
	if err != nil {
		return "", fmt.Errorf("sessionx: encode payload: %w", err)
	}

	encoded := is.codec.Encode(data)
	sig, err := is.signer.Sign(ctx, encoded)
	if err != nil {
		return "", fmt.Errorf("sessionx: sign payload: %w", err)
	}

	return encoded + "." + sig, nil
}

// IssueToken issues a token with DefaultTTL using the native signer.
func IssueToken(id Identity, secret string) (string, error) {
	return IssueTokenTTL(id, secret, DefaultTTL)
}

// IssueTokenTTL is IssueToken with an explicit lifetime.
func IssueTokenTTL(id Identity, secret string, ttl time.Duration) (string, error) {
	is, err := NewIssuer(Config{Secret: secret, TTL: ttl}, nil)
	if err != nil {
		return "", err
	}
	return is.Issue(context.Background(), id)
}
