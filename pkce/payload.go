package pkce

import (
	"fmt"
	"net/url"
	"strings"
)

// Payload is the set of fields that make up an authorization request body.
// ClientID, RedirectURI and Scope come from the caller; the remaining fields
// are the generated PKCE values.
type Payload struct {
	ClientID      string
	RedirectURI   string
	Scope         string
	CodeChallenge string
	Method        ChallengeMethod
	State         string
	Nonce         string
}

// Encode renders the payload as an application/x-www-form-urlencoded string
// with a fixed field order:
//
//	client_id, redirect_uri, scope, response_type=code,
//	code_challenge, code_challenge_method, state, nonce
//
// The fixed order makes the output byte-identical for identical inputs.
// url.Values.Encode sorts keys alphabetically, so the pairs are joined by
// hand here instead.
func (p Payload) Encode() (string, error) {
	if p.ClientID == "" {
		return "", fmt.Errorf("%w: client_id", ErrMissingField)
	}
	if p.RedirectURI == "" {
		return "", fmt.Errorf("%w: redirect_uri", ErrMissingField)
	}
	if p.Scope == "" {
		return "", fmt.Errorf("%w: scope", ErrMissingField)
	}

	pairs := [...][2]string{
		{"client_id", p.ClientID},
		{"redirect_uri", p.RedirectURI},
		{"scope", p.Scope},
		{"response_type", "code"},
		{"code_challenge", p.CodeChallenge},
		{"code_challenge_method", string(p.Method)},
		{"state", p.State},
		{"nonce", p.Nonce},
	}

	var b strings.Builder
	for i, kv := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String(), nil
}
