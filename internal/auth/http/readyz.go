package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/goalpost/internal/auth/store"
	"github.com/aussiebroadwan/goalpost/pkg/authsdk"
	"github.com/aussiebroadwan/goalpost/pkg/httpx"
	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database and that a probe token issued here is accepted by both verifiers.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	signerCheck func(context.Context) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &authsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if err := signerCheck(r.Context()); err != nil {
			checks.Signer = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, authsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

var errVerifierDisagree = errors.New("verifiers disagree on probe token")

var probeIdentity = sessionx.Identity{ID: "readyz", Email: "readyz@goalpost.invalid"}

// signerCheck issues a probe token and requires both runtimes to accept it
// with the same identity.
func (r *Router) signerCheck(ctx context.Context) error {
	tok, err := r.cfg.Issuer.Issue(ctx, probeIdentity)
	if err != nil {
		return err
	}

	native, err := r.cfg.Native.Verify(ctx, tok)
	if err != nil {
		return err
	}
	edge, err := r.cfg.Edge.Verify(ctx, tok)
	if err != nil {
		return err
	}
	if native != edge || native != probeIdentity {
		return errVerifierDisagree
	}
	return nil
}
