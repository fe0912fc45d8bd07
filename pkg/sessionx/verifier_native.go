package sessionx

import (
	"crypto/subtle"
)

// NativeVerifier checks tokens in the full server runtime.
type NativeVerifier struct {
	cfg    Config
	signer *HMACSigner
	codec  NativeCodec
}

func NewNativeVerifier(cfg Config) (*NativeVerifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	signer, err := NewHMACSigner(cfg.Secret)
	if err != nil {
		return nil, err
	}
	return &NativeVerifier{cfg: cfg, signer: signer}, nil
}

// Verify recomputes the signature over the payload segment and compares the
// encoded forms in constant time before looking at the payload at all.
func (v *NativeVerifier) Verify(token string) (*Identity, error) {
	payloadSeg, sigSeg, err := splitToken(token)
	if err != nil {
		return nil, err
	}

	// ConstantTimeCompare returns early only on a length mismatch, which
	// leaks nothing about the content.
	expected := v.signer.SignString(payloadSeg)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(sigSeg)) != 1 {
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
