package pkce

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// ChallengeMethod selects how the code challenge is derived from the verifier.
type ChallengeMethod string

const (
	// MethodS256 derives the challenge as base64url(sha256(verifier)), the
	// method RFC 7636 recommends.
	MethodS256 ChallengeMethod = "S256"
	// MethodPlain sends the verifier itself as the challenge.
	MethodPlain ChallengeMethod = "plain"
)

// Valid reports whether m is one of the two methods RFC 7636 defines.
func (m ChallengeMethod) Valid() bool {
	return m == MethodS256 || m == MethodPlain
}

// S256Challenge computes the S256 code challenge for a verifier: the SHA-256
// digest of its ASCII bytes, base64url-encoded without padding.
func S256Challenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// DeriveChallenge derives the code challenge for verifier under method.
// The transform is pure: the same verifier and method always produce the
// same challenge.
func DeriveChallenge(verifier string, method ChallengeMethod) (string, error) {
	switch method {
	case MethodS256:
		return S256Challenge(verifier), nil
	case MethodPlain:
		return verifier, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
}
