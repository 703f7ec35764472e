// Package pkce generates the client-side parameters of the OAuth2 PKCE
// extension defined in RFC 7636: a code verifier, the code challenge derived
// from it, plus state and nonce values, and assembles them into the
// url-encoded authorization request payload.
//
// Every call is stateless and synchronous. The package keeps no copy of any
// generated value and never logs one; the caller owns the code verifier and
// must retain it for the token exchange step.
package pkce

import (
	"errors"
	"fmt"
)

// Defined in RFC 7636 (PKCE). Its length must be between 43 and 128 characters.
const (
	MinVerifierLength = 43
	MaxVerifierLength = 128
)

// Default lengths. The verifier default sits in the middle of the RFC 7636
// range. State and nonce lengths are not standardized; 16 characters of the
// unreserved alphabet carry enough entropy for CSRF and replay protection.
const (
	DefaultVerifierLength = 64
	DefaultStateLength    = 16
	DefaultNonceLength    = 16
)

var (
	// ErrInvalidLength is returned when a requested random string length is not positive.
	ErrInvalidLength = errors.New("length must be positive")
	// ErrVerifierLengthOutOfRange is returned when a code verifier length falls outside [43, 128].
	ErrVerifierLengthOutOfRange = errors.New("code verifier length must be between 43 and 128")
	// ErrUnsupportedMethod is returned when the challenge method is neither S256 nor plain.
	ErrUnsupportedMethod = errors.New("unsupported code challenge method")
	// ErrMissingField is returned when client_id, redirect_uri or scope is empty.
	ErrMissingField = errors.New("missing required field")
)

// Config holds the inputs of one generation call. ClientID, RedirectURI and
// Scope are required; the zero value of every other field selects its default.
type Config struct {
	ClientID    string
	RedirectURI string
	Scope       string

	Method         ChallengeMethod
	VerifierLength int
	StateLength    int
	NonceLength    int
}

func (c Config) withDefaults() Config {
	if c.Method == "" {
		c.Method = MethodS256
	}
	if c.VerifierLength == 0 {
		c.VerifierLength = DefaultVerifierLength
	}
	if c.StateLength == 0 {
		c.StateLength = DefaultStateLength
	}
	if c.NonceLength == 0 {
		c.NonceLength = DefaultNonceLength
	}
	return c
}

// Validate checks a fully populated Config. Generate and NewParams apply
// defaults before calling it, so explicit zero lengths only fail here when
// the caller bypasses those entry points.
func (c Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("%w: client_id", ErrMissingField)
	}
	if c.RedirectURI == "" {
		return fmt.Errorf("%w: redirect_uri", ErrMissingField)
	}
	if c.Scope == "" {
		return fmt.Errorf("%w: scope", ErrMissingField)
	}
	if !c.Method.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, c.Method)
	}
	if c.VerifierLength < MinVerifierLength || c.VerifierLength > MaxVerifierLength {
		return fmt.Errorf("%w: got %d", ErrVerifierLengthOutOfRange, c.VerifierLength)
	}
	if c.StateLength <= 0 {
		return fmt.Errorf("%w: state length %d", ErrInvalidLength, c.StateLength)
	}
	if c.NonceLength <= 0 {
		return fmt.Errorf("%w: nonce length %d", ErrInvalidLength, c.NonceLength)
	}
	return nil
}

// Params holds the values produced by one generation call.
type Params struct {
	Verifier  string
	Challenge string
	Method    ChallengeMethod
	State     string
	Nonce     string
}

// NewParams validates cfg (after applying defaults) and generates a fresh set
// of PKCE parameters: verifier, challenge, state and nonce. Validation happens
// before any randomness is consumed; on error no partial result is returned.
func NewParams(cfg Config) (*Params, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	verifier, err := NewCodeVerifier(cfg.VerifierLength)
	if err != nil {
		return nil, err
	}
	challenge, err := DeriveChallenge(verifier, cfg.Method)
	if err != nil {
		return nil, err
	}
	state, err := RandomString(cfg.StateLength)
	if err != nil {
		return nil, err
	}
	nonce, err := RandomString(cfg.NonceLength)
	if err != nil {
		return nil, err
	}

	return &Params{
		Verifier:  verifier,
		Challenge: challenge,
		Method:    cfg.Method,
		State:     state,
		Nonce:     nonce,
	}, nil
}

// Generate is the single entry point for callers that want the url-encoded
// authorization payload. It returns the payload and the raw code verifier,
// which the caller must keep for the later token exchange.
func Generate(cfg Config) (payload string, verifier string, err error) {
	params, err := NewParams(cfg)
	if err != nil {
		return "", "", err
	}

	encoded, err := Payload{
		ClientID:      cfg.ClientID,
		RedirectURI:   cfg.RedirectURI,
		Scope:         cfg.Scope,
		CodeChallenge: params.Challenge,
		Method:        params.Method,
		State:         params.State,
		Nonce:         params.Nonce,
	}.Encode()
	if err != nil {
		return "", "", err
	}

	return encoded, params.Verifier, nil
}
