package sessionx

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"strings"
)

// Signer computes the signature segment for an encoded payload. The algorithm
// is fixed to HMAC-SHA256 and the result is unpadded base64url. Every backend
// must return the same string for the same secret and message.
type Signer interface {
	Sign(ctx context.Context, message string) (string, error)
}

// Backend names a Signer implementation.
type Backend string

const (
	// BackendNative keeps the key bytes in memory and signs synchronously.
	BackendNative Backend = "native"
	// BackendEdge signs through an imported key handle, the way a Web Crypto
	// runtime does.
	BackendEdge Backend = "edge"
	// BackendAuto picks a backend with DetectBackend.
	BackendAuto Backend = "auto"
)

// ParseBackend maps a configuration string to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendNative, BackendEdge, BackendAuto:
		return b, nil
	case "":
		return BackendAuto, nil
	default:
		return "", ErrUnknownBackend
	}
}

// DetectBackend reports which backend this runtime can serve. The edge
// backend depends on SHA-256 being registered with the crypto package.
func DetectBackend() Backend {
	if edgeAvailable() {
		return BackendEdge
	}
	return BackendNative
}

// NewSigner builds the Signer for the requested backend.
func NewSigner(secret string, backend Backend) (Signer, error) {
	if backend == BackendAuto {
		backend = DetectBackend()
	}

	switch backend {
	case BackendNative:
		return NewHMACSigner(secret)
	case BackendEdge:
		return NewEdgeSigner(secret)
	default:
		return nil, ErrUnknownBackend
	}
}

// HMACSigner signs with the key material held in memory.
type HMACSigner struct {
	key   []byte
	codec NativeCodec
}

// NewHMACSigner refuses an empty secret; there is no unsigned mode.
func NewHMACSigner(secret string) (*HMACSigner, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	return &HMACSigner{key: []byte(secret)}, nil
}

// SignString is the synchronous form of Sign.
func (s *HMACSigner) SignString(message string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(message))
	return s.codec.Encode(mac.Sum(nil))
}

func (s *HMACSigner) Sign(_ context.Context, message string) (string, error) {
	return s.SignString(message), nil
}
