package http

import (
	"net/http"

	"github.com/aussiebroadwan/goalpost/internal/auth/service"
	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/httpx"
)

type LoginHandler struct {
	Accounts *service.AccountService
	Cookie   httpx.CookieConfig
	OnIssued func(flow string)
}

// ServeHTTP exchanges an email and password for a session cookie.
//
//	@Summary		Log in
//	@Description	Verifies the password and sets the session cookie. Unknown email and wrong password return the same error.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest				true	"Credentials"
//	@Success		200		{object}	authsdk.IdentityResponse			"Identity carried by the session"
//	@Failure		400		{object}	authsdk.ValidationErrorResponse		"Missing fields"
//	@Failure		401		{object}	authsdk.ErrorResponse				"Invalid email or password"
//	@Failure		429		{object}	authsdk.ErrorResponse				"Rate limit exceeded"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if details := req.Validate(); details != nil {
		authsdk.WriteValidationError(w, details)
		return
	}

	s, err := h.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if h.OnIssued != nil {
		h.OnIssued("login")
	}
	startSession(w, h.Cookie, http.StatusOK, s)
}
