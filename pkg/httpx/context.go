package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
)

type ctxKey string

const CtxKeyIdentity ctxKey = "identity"

// WithIdentity stores the verified session identity on the context.
func WithIdentity(ctx context.Context, id sessionx.Identity) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, id)
}

// IdentityFromContext returns the identity placed by SessionMiddleware or
// GatewayMiddleware.
func IdentityFromContext(ctx context.Context) (sessionx.Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(sessionx.Identity)
	return id, ok
}

// UIDKeyExtractor keys rate limits by the authenticated uid.
func UIDKeyExtractor(r *http.Request) string {
	if id, ok := IdentityFromContext(r.Context()); ok {
		return id.ID
	}
	return ""
}
