// Package google adapts Google's OAuth 2.0 and OpenID Connect endpoints to the domain ports.
package google

import (
	"context"
	"net/http"
	"strings"

	"calbridge/config"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const (
	googleOAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"

	errorCodeInvalidGrant  = "invalid_grant"
	invalidCredentialsText = "Invalid Credentials"
)

// OAuthService drives Google's authorization-code flow through x/oauth2.
type OAuthService struct {
	conf   *oauth2.Config
	client *http.Client
}

// NewOAuthService creates a new Google OAuth provider
func NewOAuthService(cfg *config.Config) service.OAuthProvider {
	endpoint := googleoauth.Endpoint
	endpoint.AuthURL = googleOAuthURL
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return newOAuthService(&oauth2.Config{
		ClientID:     cfg.OAuth.ClientID,
		ClientSecret: cfg.OAuth.ClientSecret,
		RedirectURL:  cfg.OAuth.RedirectURI,
		Scopes:       strings.Fields(cfg.OAuth.Scopes),
		Endpoint:     endpoint,
	}, nil)
}

func newOAuthService(conf *oauth2.Config, client *http.Client) *OAuthService {
	return &OAuthService{conf: conf, client: client}
}

// AuthCodeURL builds the consent URL. Offline access with a forced consent prompt makes
// Google issue a refresh token on every grant.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for tokens
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.OAuthToken, error) {
	tok, err := s.conf.Exchange(s.withClient(ctx), code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange authorization code")
	}

	return toOAuthToken(tok), nil
}

// Refresh mints a new access token from refreshToken
func (s *OAuthService) Refresh(ctx context.Context, refreshToken string) (*service.OAuthToken, error) {
	src := s.conf.TokenSource(s.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})

	tok, err := src.Token()
	if err != nil {
		if isRevoked(err) {
			return nil, errors.Wrap(service.ErrCredentialsRevoked, err.Error())
		}

		return nil, errors.Wrap(err, "refresh access token")
	}

	return toOAuthToken(tok), nil
}

func (s *OAuthService) withClient(ctx context.Context) context.Context {
	if s.client == nil {
		return ctx
	}

	return context.WithValue(ctx, oauth2.HTTPClient, s.client)
}

func toOAuthToken(tok *oauth2.Token) *service.OAuthToken {
	idToken, _ := tok.Extra("id_token").(string)

	return &service.OAuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		IDToken:      idToken,
		Expiry:       tok.Expiry,
	}
}

// isRevoked reports a grant the user has to approve again.
func isRevoked(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == errorCodeInvalidGrant {
		return true
	}

	return strings.Contains(err.Error(), invalidCredentialsText)
}
