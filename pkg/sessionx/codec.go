package sessionx

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Codec converts between raw bytes and unpadded base64url text. Every
// implementation must produce the same text for the same bytes and reject the
// same inputs.
type Codec interface {
	Encode(b []byte) string
	Decode(s string) ([]byte, error)
}

var rawURL = base64.RawURLEncoding.Strict()

// NativeCodec uses the runtime's raw URL encoding directly.
type NativeCodec struct{}

func (NativeCodec) Encode(b []byte) string {
	return rawURL.EncodeToString(b)
}

// Decode rejects padding, foreign characters, non-zero trailing bits and line
// breaks (which encoding/base64 would otherwise skip).
func (NativeCodec) Decode(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, ErrDecode
	}
	b, err := rawURL.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}
