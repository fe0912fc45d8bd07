package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/goalpost/internal/auth/service"
	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/httpx"
	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
	"github.com/aussiebroadwan/goalpost/pkg/slogx"
)

const maxBodyBytes = 64 << 10

// decodeBody reads a single JSON object from the request.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.Decode(&struct{}{}) != io.EOF {
		return errors.New("trailing data after JSON body")
	}
	return nil
}

// writeServiceError maps service errors onto API errors.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		authsdk.WriteValidationError(w, verr.Details)
	case errors.Is(err, service.ErrInvalidCredentials):
		authsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		authsdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrAccountNotFound):
		authsdk.ErrInvalidSession.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
	}
}

func identityResponse(id sessionx.Identity) authsdk.IdentityResponse {
	return authsdk.IdentityResponse{UID: id.ID, Email: id.Email, Name: id.Name}
}

// startSession sets the cookie and writes the identity.
func startSession(w http.ResponseWriter, cookie httpx.CookieConfig, code int, s service.Session) {
	httpx.SetSessionCookie(w, cookie, s.Token)
	httpx.WriteJSON(w, code, identityResponse(s.Identity))
}
