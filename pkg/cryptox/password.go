package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Configuration for PBKDF2-SHA256 hashing.
const (
	algorithmTag = "pbkdf2"
	iterations   = 150_000 // Iteration count for new hashes
	keyLength    = 32      // Length of the derived key
	saltLength   = 16      // Length of the salt

	// MinIterations is the floor below which a stored hash is treated as
	// corrupt or downgraded and never compared.
	MinIterations = 100_000
	// MaxIterations caps the work a single stored record can demand.
	MaxIterations = 10_000_000
)

var (
	ErrMalformedHash    = errors.New("cryptox: malformed password hash")
	ErrPasswordMismatch = errors.New("password does not match")
)

var hashEncoding = base64.RawURLEncoding.Strict()

// HashPassword derives a key from password with a fresh random salt and
// returns "pbkdf2$<iterations>$<salt>$<key>", salt and key in base64url.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("cryptox: generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return strings.Join([]string{
		algorithmTag,
		strconv.Itoa(iterations),
		hashEncoding.EncodeToString(salt),
		hashEncoding.EncodeToString(key),
	}, "$"), nil
}

// VerifyPassword reports whether password matches encodedHash. Malformed
// hashes are a normal "no" answer.
func VerifyPassword(password, encodedHash string) bool {
	return CheckPassword(password, encodedHash) == nil
}

// CheckPassword is VerifyPassword with the reason: ErrMalformedHash for a
// record that cannot be parsed or fails the parameter checks, and
// ErrPasswordMismatch otherwise.
func CheckPassword(password, encodedHash string) error {
	p, err := parseHash(encodedHash)
	if err != nil {
		return err
	}

	computed := pbkdf2.Key([]byte(password), p.salt, p.iterations, len(p.key), sha256.New)
	if subtle.ConstantTimeCompare(computed, p.key) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

type parsedHash struct {
	iterations int
	salt       []byte
	key        []byte
}

// parseHash validates the tag and iteration count before touching the salt
// or key.
func parseHash(encoded string) (parsedHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		return parsedHash{}, fmt.Errorf("%w: expected 4 parts, got %d", ErrMalformedHash, len(parts))
	}
	if parts[0] != algorithmTag {
		return parsedHash{}, fmt.Errorf("%w: unknown algorithm %q", ErrMalformedHash, parts[0])
	}

	// Only the canonical decimal form, so every accepted record re-encodes to
	// the same string.
	iters, err := strconv.Atoi(parts[1])
	if err != nil || strconv.Itoa(iters) != parts[1] {
		return parsedHash{}, fmt.Errorf("%w: iteration count", ErrMalformedHash)
	}
	if iters < MinIterations || iters > MaxIterations {
		return parsedHash{}, fmt.Errorf("%w: iteration count %d out of range", ErrMalformedHash, iters)
	}

	salt, err := hashEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return parsedHash{}, fmt.Errorf("%w: salt", ErrMalformedHash)
	}
	key, err := hashEncoding.DecodeString(parts[3])
	if err != nil || len(key) != keyLength {
		return parsedHash{}, fmt.Errorf("%w: derived key", ErrMalformedHash)
	}

	return parsedHash{iterations: iters, salt: salt, key: key}, nil
}
