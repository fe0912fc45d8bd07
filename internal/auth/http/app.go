package http

import (
	"net/http"

	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/httpx"
)

// AppHandler stands in for the pages behind the gateway. The gateway has
// already verified the cookie on the edge path; this only echoes the result.
//
//	@Summary		Gateway-protected area
//	@Description	Reachable only with a valid session cookie. Rejected requests are redirected to the login path with 303 See Other.
//	@Tags			Gateway
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	authsdk.IdentityResponse	"Identity seen by the gateway"
//	@Failure		303	"Redirect to the login path"
//	@Router			/app/ [get].
func AppHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		authsdk.ErrInvalidSession.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, identityResponse(id))
}
