package http

import (
	"net/http"

	"github.com/aussiebroadwan/goalpost/internal/auth/service"
	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/httpx"
)

type SignupHandler struct {
	Accounts *service.AccountService
	Cookie   httpx.CookieConfig
	OnIssued func(flow string)
}

// ServeHTTP creates an account and starts its session.
//
//	@Summary		Create an account
//	@Description	Creates a credential for the email, hashes the password with PBKDF2-SHA256 and sets the session cookie.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SignupRequest				true	"Signup details"
//	@Success		201		{object}	authsdk.IdentityResponse			"Identity carried by the new session"
//	@Failure		400		{object}	authsdk.ValidationErrorResponse		"Invalid fields"
//	@Failure		409		{object}	authsdk.ErrorResponse				"Email already registered"
//	@Failure		429		{object}	authsdk.ErrorResponse				"Rate limit exceeded"
//	@Router			/v1/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.SignupRequest
	if err := decodeBody(w, r, &req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	s, err := h.Accounts.Signup(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if h.OnIssued != nil {
		h.OnIssued("signup")
	}
	startSession(w, h.Cookie, http.StatusCreated, s)
}
