package http

import (
	"net/http"

	"github.com/aussiebroadwan/goalpost/pkg/httpx"
)

// LogoutHandler godoc
//
//	@Summary		Log out
//	@Description	Clears the session cookie. Tokens are stateless; a copied token stays valid until it expires.
//	@Tags			Sessions
//	@Success		204	"Cookie cleared"
//	@Router			/v1/logout [post].
func LogoutHandler(cookie httpx.CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.NoCache(w)
		httpx.ClearSessionCookie(w, cookie)
		w.WriteHeader(http.StatusNoContent)
	}
}
