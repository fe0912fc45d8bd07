package sessionx_test

import (
	"crypto/rand"
	"testing"

	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

func codecs() map[string]sessionx.Codec {
	return map[string]sessionx.Codec{
		"native": sessionx.NativeCodec{},
		"web":    sessionx.WebCodec{},
	}
}

func TestCodecKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		enc  string
	}{
		{"empty", []byte{}, ""},
		{"ascii", []byte("hello world"), "aGVsbG8gd29ybGQ"},
		{"url alphabet", []byte{0xfb, 0xff}, "-_8"},
	}

	for name, c := range codecs() {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				require.Equal(t, tt.enc, c.Encode(tt.raw))

				got, err := c.Decode(tt.enc)
				require.NoError(t, err)
				require.Equal(t, tt.raw, append([]byte{}, got...))
			})
		}
	}
}

func TestCodecsInterchangeable(t *testing.T) {
	native := sessionx.NativeCodec{}
	web := sessionx.WebCodec{}

	for n := range 67 {
		buf := make([]byte, n)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		encNative := native.Encode(buf)
		encWeb := web.Encode(buf)
		require.Equal(t, encNative, encWeb, "length %d", n)

		fromNative, err := web.Decode(encNative)
		require.NoError(t, err)
		require.Equal(t, buf, append([]byte{}, fromNative...))

		fromWeb, err := native.Decode(encWeb)
		require.NoError(t, err)
		require.Equal(t, buf, append([]byte{}, fromWeb...))
	}
}

func TestCodecRejectsMalformed(t *testing.T) {
	inputs := map[string]string{
		"padding":              "aGVsbG8gd29ybGQ=",
		"standard alphabet +":  "a+8",
		"standard alphabet /":  "a/8",
		"single leftover char": "aGVsb",
		"non-zero tail bits":   "QR",
		"space":                "aGVs bG8",
		"newline":              "aGVs\nbG8",
		"carriage return":      "aGVs\rbG8",
		"non-ascii":            "aGVsbG8é",
		"dot":                  "aGVs.bG8",
	}

	for name, c := range codecs() {
		for label, in := range inputs {
			t.Run(name+"/"+label, func(t *testing.T) {
				_, err := c.Decode(in)
				require.ErrorIs(t, err, sessionx.ErrDecode)
			})
		}
	}
}

func TestCodecRepadsRemainders(t *testing.T) {
	// Remainders of 2 and 3 characters must decode to 1 and 2 bytes.
	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			one, err := c.Decode("QQ")
			require.NoError(t, err)
			require.Equal(t, []byte("A"), append([]byte{}, one...))

			two, err := c.Decode("QUI")
			require.NoError(t, err)
			require.Equal(t, []byte("AB"), append([]byte{}, two...))
		})
	}
}
