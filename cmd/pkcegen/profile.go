package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/caasmo/pkcegen/pkce"
)

// profile holds client settings loaded from a TOML file, so a user does not
// have to repeat client_id, redirect_uri and scope on every invocation.
// Flags take precedence over profile values.
type profile struct {
	ClientID       string `toml:"client_id"`
	RedirectURI    string `toml:"redirect_uri"`
	Scope          string `toml:"scope"`
	Method         string `toml:"code_challenge_method"`
	VerifierLength int    `toml:"code_verifier_length"`
	StateLength    int    `toml:"state_length"`
	NonceLength    int    `toml:"nonce_length"`
	AuthURL        string `toml:"auth_url"`
}

func loadProfile(path string) (profile, error) {
	var p profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return profile{}, fmt.Errorf("loading profile %s: %w", path, err)
	}
	return p, nil
}

// merge fills the zero-valued fields of cfg from the profile.
func (p profile) merge(cfg pkce.Config) pkce.Config {
	if cfg.ClientID == "" {
		cfg.ClientID = p.ClientID
	}
	if cfg.RedirectURI == "" {
		cfg.RedirectURI = p.RedirectURI
	}
	if cfg.Scope == "" {
		cfg.Scope = p.Scope
	}
	if cfg.Method == "" {
		cfg.Method = pkce.ChallengeMethod(p.Method)
	}
	if cfg.VerifierLength == 0 {
		cfg.VerifierLength = p.VerifierLength
	}
	if cfg.StateLength == 0 {
		cfg.StateLength = p.StateLength
	}
	if cfg.NonceLength == 0 {
		cfg.NonceLength = p.NonceLength
	}
	return cfg
}
