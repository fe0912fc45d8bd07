package sessionx

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var (
	stdPadded = base64.StdEncoding.Strict()

	toURLAlphabet   = strings.NewReplacer("+", "-", "/", "_")
	fromURLAlphabet = strings.NewReplacer("-", "+", "_", "/")
)

// WebCodec follows the route a Web-standard runtime takes with btoa/atob: it
// only has the padded standard alphabet, so output is translated to the URL
// alphabet and stripped of padding, and input is translated back and re-padded.
type WebCodec struct{}

func (WebCodec) Encode(b []byte) string {
	s := stdPadded.EncodeToString(b)
	return toURLAlphabet.Replace(strings.TrimRight(s, "="))
}

func (WebCodec) Decode(s string) ([]byte, error) {
	for i := range len(s) {
		if !isURLAlphabet(s[i]) {
			return nil, ErrDecode
		}
	}

	// A single leftover character can never encode a whole byte.
	rem := len(s) % 4
	if rem == 1 {
		return nil, ErrDecode
	}

	padded := fromURLAlphabet.Replace(s)
	if rem != 0 {
		padded += strings.Repeat("=", 4-rem)
	}

	b, err := stdPadded.DecodeString(padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

func isURLAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}
