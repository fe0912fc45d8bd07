package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
	"github.com/aussiebroadwan/goalpost/pkg/slogx"
)

// errNoSession is a missing cookie. It is not a verification and is not
// reported to the observer.
var errNoSession = fmt.Errorf("%w: no session cookie", sessionx.ErrNotAuthenticated)

// VerifyObserver receives the outcome of every cookie verification. runtime
// is "native" or "edge"; err is nil on success.
type VerifyObserver func(runtime string, err error)

// SessionConfig configures SessionMiddleware.
type SessionConfig struct {
	CookieName string
	Verifier   sessionx.Verifier
	Runtime    string
	Observe    VerifyObserver
}

// SessionMiddleware requires a valid session cookie. Every rejection is the
// same 401 so callers cannot tell a forged token from an expired one.
func SessionMiddleware(cfg SessionConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := verifyCookie(r, cfg.CookieName, cfg.Verifier)
			observe(cfg.Observe, cfg.Runtime, err)
			if err != nil {
				slogx.FromContext(ctx).Debug("session rejected", "reason", sessionx.Reason(err))
				WriteError(w, http.StatusUnauthorized, "invalid_session", "Sign in to continue.")
				return
			}

			ctx = slogx.WithUID(WithIdentity(ctx, id), id.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GatewayConfig configures GatewayMiddleware.
type GatewayConfig struct {
	CookieName string
	Prefixes   []string
	LoginPath  string
	Verifier   sessionx.Verifier
	Runtime    string
	Observe    VerifyObserver
}

// GatewayMiddleware guards whole path prefixes before routing. A rejected
// browser is sent to the login page with the original path in next.
func GatewayMiddleware(cfg GatewayConfig) Middleware {
	login := cfg.LoginPath
	if login == "" {
		login = "/login"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guarded(r.URL.Path, cfg.Prefixes) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			id, err := verifyCookie(r, cfg.CookieName, cfg.Verifier)
			observe(cfg.Observe, cfg.Runtime, err)
			if err != nil {
				slogx.FromContext(ctx).Debug("gateway redirect", "reason", sessionx.Reason(err))
				http.Redirect(w, r, login+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
				return
			}

			ctx = slogx.WithUID(WithIdentity(ctx, id), id.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func guarded(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func verifyCookie(r *http.Request, name string, v sessionx.Verifier) (sessionx.Identity, error) {
	token := SessionToken(r, name)
	if token == "" {
		return sessionx.Identity{}, errNoSession
	}
	return v.Verify(r.Context(), token)
}

func observe(fn VerifyObserver, runtime string, err error) {
	if fn == nil || errors.Is(err, errNoSession) {
		return
	}
	fn(runtime, err)
}
