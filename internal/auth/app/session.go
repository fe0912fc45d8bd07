package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/goalpost/pkg/cryptox"
	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
)

// Sessions bundles the issuer with one verifier per runtime. Both verifiers
// are built from the same Config so they accept exactly the same tokens.
type Sessions struct {
	Issuer  *sessionx.Issuer
	Native  sessionx.Verifier
	Edge    sessionx.Verifier
	Backend sessionx.Backend
}

// InitSessions builds the signer for the configured backend and the verifiers
// for both runtimes. Only a fingerprint of the secret is logged.
func InitSessions(cfg Config, logger *slog.Logger) (*Sessions, error) {
	sc := sessionx.Config{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	backend := cfg.SessionBackend
	if backend == "" || backend == sessionx.BackendAuto {
		backend = sessionx.DetectBackend()
	}

	signer, err := sessionx.NewSigner(sc.Secret, backend)
	if err != nil {
		return nil, fmt.Errorf("signer %q: %w", backend, err)
	}

	issuer, err := sessionx.NewIssuer(sc, signer)
	if err != nil {
		return nil, err
	}

	native, err := sessionx.NewCommonNative(sc)
	if err != nil {
		return nil, err
	}
	edge, err := sessionx.NewCommonEdge(sc)
	if err != nil {
		return nil, err
	}

	logger.Info("session signer ready",
		"backend", string(backend),
		"ttl", issuer.TTL().String(),
		"secret_fingerprint", cryptox.FingerprintToken(sc.Secret),
	)

	return &Sessions{Issuer: issuer, Native: native, Edge: edge, Backend: backend}, nil
}
