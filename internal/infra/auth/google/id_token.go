package google

import (
	"context"

	"calbridge/config"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"

	"github.com/coreos/go-oidc/v3/oidc"
)

const (
	googleIssuer   = "https://accounts.google.com"
	googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"
)

type idTokenVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewIDTokenVerifier verifies Google ID tokens against Google's published signing keys.
// Keys are fetched lazily and cached by the key set.
func NewIDTokenVerifier(ctx context.Context, cfg *config.Config) service.IDTokenVerifier {
	keySet := oidc.NewRemoteKeySet(ctx, googleCertsURL)

	return newIDTokenVerifier(keySet, &oidc.Config{ClientID: cfg.OAuth.ClientID})
}

func newIDTokenVerifier(keySet oidc.KeySet, cfg *oidc.Config) *idTokenVerifier {
	return &idTokenVerifier{verifier: oidc.NewVerifier(googleIssuer, keySet, cfg)}
}

// VerifyIDToken checks signature, issuer, audience and expiry, then extracts the identity claims
func (v *idTokenVerifier) VerifyIDToken(ctx context.Context, rawIDToken string) (*service.IDTokenClaims, error) {
	if rawIDToken == "" {
		return nil, errors.New("id token is empty")
	}

	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.Wrap(err, "decode id token claims")
	}

	if claims.Email == "" {
		return nil, errors.New("id token carries no email claim")
	}

	return &service.IDTokenClaims{
		Subject:       idToken.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}
