package http

import (
	"net/http"

	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/httpx"
)

// SessionHandler returns the identity of the verified session.
//
//	@Summary		Current session
//	@Description	Verifies the session cookie with the full runtime verifier and returns its identity.
//	@Tags			Sessions
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	authsdk.IdentityResponse	"Identity"
//	@Failure		401	{object}	authsdk.ErrorResponse		"Missing, forged or expired session"
//	@Router			/v1/session [get].
func SessionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		authsdk.ErrInvalidSession.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, identityResponse(id))
}
