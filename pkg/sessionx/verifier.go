package sessionx

import (
	"context"
	"strings"
)

// Verifier is the common shape of both verifier variants.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// NativeAdapter wraps NativeVerifier in the common interface.
type NativeAdapter struct{ *NativeVerifier }

func (a NativeAdapter) Verify(_ context.Context, token string) (Identity, error) {
	id, err := a.NativeVerifier.Verify(token)
	if err != nil {
		return Identity{}, err
	}
	return *id, nil
}

// NewCommonNative returns the full-runtime verifier behind the common interface.
func NewCommonNative(cfg Config) (Verifier, error) {
	v, err := NewNativeVerifier(cfg)
	if err != nil {
		return nil, err
	}
	return NativeAdapter{v}, nil
}

// EdgeAdapter wraps EdgeVerifier in the common interface.
type EdgeAdapter struct{ *EdgeVerifier }

func (a EdgeAdapter) Verify(ctx context.Context, token string) (Identity, error) {
	id, err := a.EdgeVerifier.Verify(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	return *id, nil
}

// NewCommonEdge returns the restricted-runtime verifier behind the common
// interface.
func NewCommonEdge(cfg Config) (Verifier, error) {
	v, err := NewEdgeVerifier(cfg)
	if err != nil {
		return nil, err
	}
	return EdgeAdapter{v}, nil
}

// VerifyToken collapses every failure into nil. Use it at call sites that only
// need to know whether the caller is authenticated.
func VerifyToken(ctx context.Context, v Verifier, token string) *Identity {
	id, err := v.Verify(ctx, token)
	if err != nil {
		return nil
	}
	return &id
}

// splitToken requires exactly two non-empty segments.
func splitToken(token string) (payload, sig string, err error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok || payload == "" || sig == "" || strings.Contains(sig, ".") {
		return "", "", ErrMalformed
	}
	return payload, sig, nil
}
