package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrCredentialsRevoked marks a refresh the provider rejected because the grant is gone
// (invalid_grant, or an "Invalid Credentials" auth error). The user must consent again.
var ErrCredentialsRevoked = errors.New("oauth credentials revoked")

// OAuthToken is the provider's token response, flattened.
type OAuthToken struct {
	AccessToken  string
	RefreshToken string // Empty when the provider did not rotate or issue one.
	IDToken      string // Only present on the authorization-code exchange.
	Expiry       time.Time
}

// OAuthProvider drives the authorization-code flow against the calendar provider.
type OAuthProvider interface {
	// AuthCodeURL builds the consent URL. An empty state is omitted.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code string) (*OAuthToken, error)

	// Refresh mints a new access token. Revoked grants are reported as ErrCredentialsRevoked.
	Refresh(ctx context.Context, refreshToken string) (*OAuthToken, error)
}

// IDTokenClaims are the identity claims calbridge reads from an ID token.
type IDTokenClaims struct {
	Subject       string
	Email         string
	EmailVerified bool
}

// IDTokenVerifier checks an ID token's signature, issuer, audience and expiry.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, rawIDToken string) (*IDTokenClaims, error)
}
