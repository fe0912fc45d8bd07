package sessionx

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is wrapped by every verification failure.
var ErrNotAuthenticated = errors.New("sessionx: not authenticated")

var (
	ErrMalformed     = fmt.Errorf("%w: malformed token", ErrNotAuthenticated)
	ErrInvalidSig    = fmt.Errorf("%w: invalid signature", ErrNotAuthenticated)
	ErrExpired       = fmt.Errorf("%w: token expired", ErrNotAuthenticated)
	ErrInvalidClaims = fmt.Errorf("%w: invalid claims", ErrNotAuthenticated)
)

var (
	ErrMissingSecret   = errors.New("sessionx: session secret is not configured")
	ErrInvalidTTL      = errors.New("sessionx: ttl must be at least one second")
	ErrInvalidIdentity = errors.New("sessionx: identity requires id and email")
	ErrDecode          = errors.New("sessionx: invalid base64url")
	ErrUnknownBackend  = errors.New("sessionx: unknown signer backend")
	ErrEdgeUnavailable = errors.New("sessionx: edge signer unavailable in this runtime")
)

// Reason maps a verification error to a short label for logs and metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrInvalidSig):
		return "signature"
	case errors.Is(err, ErrInvalidClaims):
		return "claims"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "error"
	}
}
