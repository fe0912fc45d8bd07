package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithUID scopes the request logger to an authenticated session. Only the
// uid is attached, never the email or the token.
func WithUID(ctx context.Context, uid string) context.Context {
	return WithContext(ctx, FromContext(ctx).With("uid", uid))
}
