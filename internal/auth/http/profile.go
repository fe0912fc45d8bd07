package http

import (
	"net/http"

	"github.com/aussiebroadwan/goalpost/internal/auth/service"
	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/httpx"
)

type ProfileHandler struct {
	Accounts *service.AccountService
	Cookie   httpx.CookieConfig
	OnIssued func(flow string)
}

// ServeHTTP updates the display name and reissues the session cookie.
//
//	@Summary		Update profile
//	@Description	Changes the display name. The response sets a fresh cookie carrying the new name.
//	@Tags			Profile
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.UpdateProfileRequest		true	"New name"
//	@Success		200		{object}	authsdk.IdentityResponse			"Updated identity"
//	@Failure		400		{object}	authsdk.ValidationErrorResponse		"Invalid name"
//	@Failure		401		{object}	authsdk.ErrorResponse				"Missing or invalid session"
//	@Router			/v1/profile [patch].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		authsdk.ErrInvalidSession.WriteError(w)
		return
	}

	var req authsdk.UpdateProfileRequest
	if err := decodeBody(w, r, &req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	s, err := h.Accounts.UpdateName(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if h.OnIssued != nil {
		h.OnIssued("profile")
	}
	startSession(w, h.Cookie, http.StatusOK, s)
}
