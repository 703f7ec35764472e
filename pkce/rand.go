package pkce

import (
	"crypto/rand"
	"fmt"
)

// Defined in RFC 7636 (PKCE). Allowed characters: A-Z, a-z, 0-9, and the symbols -, ., _, ~.
const unreservedAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

// RandomString returns length characters drawn independently and uniformly
// from the RFC 3986 unreserved alphabet, using crypto/rand as the source.
// Bytes outside the largest multiple of the alphabet size are rejected and
// redrawn, so no character is favored by a modulo remainder.
func RandomString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	// 198 = 3 * 66, the largest multiple of len(unreservedAlphabet) below 256.
	limit := 256 - 256%len(unreservedAlphabet)

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("reading entropy: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, unreservedAlphabet[int(b)%len(unreservedAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

// NewCodeVerifier generates a code verifier of the given length. RFC 7636
// requires 43 to 128 characters; lengths outside that range are rejected,
// never clamped.
func NewCodeVerifier(length int) (string, error) {
	if length < MinVerifierLength || length > MaxVerifierLength {
		return "", fmt.Errorf("%w: got %d", ErrVerifierLengthOutOfRange, length)
	}
	return RandomString(length)
}
