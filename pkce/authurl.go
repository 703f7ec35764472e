package pkce

import (
	"strings"

	"golang.org/x/oauth2"
)

// AuthCodeURL generates a fresh parameter set and builds the full
// authorization URL for endpoint, with the PKCE challenge, its method and the
// nonce attached as extra query parameters. The returned Params carry the
// code verifier the caller needs for the token exchange.
//
// This only constructs a URL; no request is made.
func AuthCodeURL(cfg Config, endpoint oauth2.Endpoint) (string, *Params, error) {
	params, err := NewParams(cfg)
	if err != nil {
		return "", nil, err
	}

	oauth2Config := oauth2.Config{
		ClientID:    cfg.ClientID,
		RedirectURL: cfg.RedirectURI,
		Scopes:      strings.Fields(cfg.Scope),
		Endpoint:    endpoint,
	}

	authURL := oauth2Config.AuthCodeURL(params.State,
		oauth2.SetAuthURLParam("code_challenge", params.Challenge),
		oauth2.SetAuthURLParam("code_challenge_method", string(params.Method)),
		oauth2.SetAuthURLParam("nonce", params.Nonce),
	)
	return authURL, params, nil
}
