package sessionx

import (
	"context"
	"fmt"
)

// EdgeVerifier checks tokens in the restricted runtime of the perimeter
// gateway. It only uses the imported key handle and the Web-style codec.
//
// A cancelled context or a failing crypto call is a rejection, never a pass.
type EdgeVerifier struct {
	cfg    Config
	signer *EdgeSigner
	codec  WebCodec
}

func NewEdgeVerifier(cfg Config) (*EdgeVerifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	signer, err := NewEdgeSigner(cfg.Secret)
	if err != nil {
		return nil, err
	}
	return &EdgeVerifier{cfg: cfg, signer: signer}, nil
}

func (v *EdgeVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payloadSeg, sigSeg, err := splitToken(token)
	if err != nil {
		return nil, err
	}

	// Strict decoding means only the canonical encoding of a signature gets
	// through, so this accepts exactly what the native string compare accepts.
	sig, err := v.codec.Decode(sigSeg)
	if err != nil {
		return nil, ErrInvalidSig
	}
	if err := v.signer.verify(ctx, payloadSeg, sig); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, ctxErr)
		}
		return nil, ErrInvalidSig
	}

	data, err := v.codec.Decode(payloadSeg)
	if err != nil {
		return nil, ErrMalformed
	}

	p, err := ParsePayload(data)
	if err != nil {
		return nil, err
	}
	if err := p.CheckExpiry(v.cfg.now()); err != nil {
		return nil, err
	}

	id := p.Identity()
	return &id, nil
}
