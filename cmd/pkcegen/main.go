package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caasmo/pkcegen/pkce"
	phuslog "github.com/phuslu/log"
	"golang.org/x/oauth2"
)

var (
	// main application errors
	ErrInvalidFlag = errors.New("invalid flag")
)

func main() {
	logger := slog.New(phuslog.SlogNewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(os.Args[1:], os.Stdout, os.Stderr, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	// We need a new flag set for each run
	fs := flag.NewFlagSet("pkcegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	profilePath := fs.String("config", "", "Path to a TOML profile with client settings")
	clientID := fs.String("client-id", "", "OAuth2 client ID")
	redirectURI := fs.String("redirect-uri", "", "Redirect URI registered with the provider")
	scope := fs.String("scope", "", "Space-separated OAuth2 scopes")
	method := fs.String("method", "", "Code challenge method: S256 or plain (default S256)")
	verifierLength := fs.Int("verifier-length", 0, "Code verifier length, 43-128 (default 64)")
	stateLength := fs.Int("state-length", 0, "State length (default 16)")
	nonceLength := fs.Int("nonce-length", 0, "Nonce length (default 16)")
	authURL := fs.String("auth-url", "", "Authorization endpoint; when set, print the full authorization URL instead of the payload")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	cfg := pkce.Config{
		ClientID:       *clientID,
		RedirectURI:    *redirectURI,
		Scope:          *scope,
		Method:         pkce.ChallengeMethod(*method),
		VerifierLength: *verifierLength,
		StateLength:    *stateLength,
		NonceLength:    *nonceLength,
	}

	endpoint := *authURL
	if *profilePath != "" {
		p, err := loadProfile(*profilePath)
		if err != nil {
			return err
		}
		logger.Info("loaded profile", "path", *profilePath)
		cfg = p.merge(cfg)
		if endpoint == "" {
			endpoint = p.AuthURL
		}
	}

	if endpoint != "" {
		// Generated secrets are the command's output. They go to stdout only,
		// never into the log stream.
		u, params, err := pkce.AuthCodeURL(cfg, oauth2.Endpoint{AuthURL: endpoint})
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "authorization_url: %s\n", u)
		fmt.Fprintf(stdout, "code_verifier: %s\n", params.Verifier)
		return nil
	}

	payload, verifier, err := pkce.Generate(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "payload: %s\n", payload)
	fmt.Fprintf(stdout, "code_verifier: %s\n", verifier)
	return nil
}
