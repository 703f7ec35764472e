package pkce

import (
	"errors"
	"testing"
)

func TestS256Challenge(t *testing.T) {
	// Example from RFC 7636
	code := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	expectedChallenge := "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"

	challenge := S256Challenge(code)
	if challenge != expectedChallenge {
		t.Errorf("S256Challenge() = %s, want %s", challenge, expectedChallenge)
	}
}

func TestDeriveChallenge(t *testing.T) {
	testCases := []struct {
		name     string
		verifier string
		method   ChallengeMethod
		want     string
		wantErr  error
	}{
		{
			name:     "S256 RFC vector",
			verifier: "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk",
			method:   MethodS256,
			want:     "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM",
		},
		{
			name:     "plain returns verifier unchanged",
			verifier: "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk",
			method:   MethodPlain,
			want:     "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk",
		},
		{
			name:     "unknown method",
			verifier: "whatever",
			method:   ChallengeMethod("S512"),
			wantErr:  ErrUnsupportedMethod,
		},
		{
			name:     "empty method",
			verifier: "whatever",
			method:   ChallengeMethod(""),
			wantErr:  ErrUnsupportedMethod,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DeriveChallenge(tc.verifier, tc.method)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("DeriveChallenge() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DeriveChallenge() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("DeriveChallenge() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestChallengeMethodValid(t *testing.T) {
	if !MethodS256.Valid() {
		t.Error("MethodS256.Valid() = false")
	}
	if !MethodPlain.Valid() {
		t.Error("MethodPlain.Valid() = false")
	}
	if ChallengeMethod("").Valid() {
		t.Error("empty method reported valid")
	}
	if ChallengeMethod("s256").Valid() {
		t.Error("method names are case-sensitive, got valid for s256")
	}
}
