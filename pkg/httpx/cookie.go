package httpx

import (
	"net/http"
	"time"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (c CookieConfig) name() string {
	if c.Name == "" {
		return "session"
	}
	return c.Name
}

// SetSessionCookie stores the wire token. The browser drops it at the same
// moment the token's exp makes it invalid.
func SetSessionCookie(w http.ResponseWriter, c CookieConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL / time.Second),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter, c CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionToken reads the raw token from the named cookie, or "".
func SessionToken(r *http.Request, name string) string {
	if name == "" {
		name = "session"
	}
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}
