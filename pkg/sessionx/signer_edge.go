package sessionx

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// EdgeKey is an imported HMAC-SHA256 key. Callers hold the handle, never the
// secret bytes.
type EdgeKey struct {
	material []byte
}

// ImportKey turns a secret into a key handle usable for signing and
// verification.
func ImportKey(secret string) (*EdgeKey, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	if !edgeAvailable() {
		return nil, ErrEdgeUnavailable
	}
	return &EdgeKey{material: []byte(secret)}, nil
}

// EdgeSigner signs through the HS256 primitive of golang-jwt, operating on the
// raw signing string rather than a full JWT.
type EdgeSigner struct {
	key    *EdgeKey
	method *jwt.SigningMethodHMAC
	codec  WebCodec
}

func NewEdgeSigner(secret string) (*EdgeSigner, error) {
	key, err := ImportKey(secret)
	if err != nil {
		return nil, err
	}
	return &EdgeSigner{key: key, method: jwt.SigningMethodHS256}, nil
}

func (s *EdgeSigner) Sign(ctx context.Context, message string) (string, error) {
	sig, err := s.sign(ctx, message)
	if err != nil {
		return "", err
	}
	return s.codec.Encode(sig), nil
}

func (s *EdgeSigner) sign(ctx context.Context, message string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sig, err := s.method.Sign(message, s.key.material)
	if err != nil {
		return nil, fmt.Errorf("sessionx: edge sign: %w", err)
	}
	return sig, nil
}

// verify checks sig against message. The comparison inside golang-jwt is
// hmac.Equal, which does not short-circuit.
func (s *EdgeSigner) verify(ctx context.Context, message string, sig []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.method.Verify(message, sig, s.key.material)
}

func edgeAvailable() bool {
	return jwt.SigningMethodHS256.Hash.Available()
}
