package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"calbridge/config"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestOAuthService(t *testing.T, handler http.HandlerFunc) *OAuthService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newOAuthService(&oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://broker.example.com/api/calendar",
		Scopes:       []string{"openid", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   googleOAuthURL,
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}, srv.Client())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.OAuth.ClientID = "test_client_id"
	cfg.OAuth.RedirectURI = "http://localhost:8080/api/calendar"
	cfg.OAuth.Scopes = config.DefaultScopes

	provider := NewOAuthService(cfg)

	tests := []struct {
		name      string
		state     string
		wantState bool
	}{
		{name: "without state", state: ""},
		{name: "with state", state: "signed-state", wantState: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := provider.AuthCodeURL(tt.state)

			parsed, err := url.Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, "accounts.google.com", parsed.Host)
			assert.Equal(t, "/o/oauth2/v2/auth", parsed.Path)

			q := parsed.Query()
			assert.Equal(t, "offline", q.Get("access_type"))
			assert.Equal(t, "consent", q.Get("prompt"))
			assert.Equal(t, "code", q.Get("response_type"))
			assert.Equal(t, "test_client_id", q.Get("client_id"))
			assert.Equal(t, "http://localhost:8080/api/calendar", q.Get("redirect_uri"))
			assert.Equal(t, config.DefaultScopes, q.Get("scope"))

			if tt.wantState {
				assert.Equal(t, tt.state, q.Get("state"))
			} else {
				assert.False(t, q.Has("state"))
			}
		})
	}
}

func TestOAuthService_Exchange(t *testing.T) {
	provider := newTestOAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		writeJSON(w, http.StatusOK, `{"access_token":"at","refresh_token":"rt","id_token":"idt","token_type":"Bearer","expires_in":3599}`)
	})

	tok, err := provider.Exchange(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "at", tok.AccessToken)
	assert.Equal(t, "rt", tok.RefreshToken)
	assert.Equal(t, "idt", tok.IDToken)
	assert.False(t, tok.Expiry.IsZero())
}

func TestOAuthService_ExchangeRejected(t *testing.T) {
	provider := newTestOAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Malformed auth code."}`)
	})

	_, err := provider.Exchange(context.Background(), "bad-code")
	require.Error(t, err)
}

func TestOAuthService_Refresh(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantRevoked bool
		wantErr     bool
		wantAccess  string
	}{
		{
			name:       "new access token",
			status:     http.StatusOK,
			body:       `{"access_token":"at-2","token_type":"Bearer","expires_in":3599}`,
			wantAccess: "at-2",
		},
		{
			name:        "invalid grant",
			status:      http.StatusBadRequest,
			body:        `{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`,
			wantErr:     true,
			wantRevoked: true,
		},
		{
			name:        "invalid credentials",
			status:      http.StatusUnauthorized,
			body:        `{"error":"unauthorized","error_description":"Invalid Credentials"}`,
			wantErr:     true,
			wantRevoked: true,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error":"internal_failure"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestOAuthService(t, func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
				assert.Equal(t, "rt-1", r.PostForm.Get("refresh_token"))

				writeJSON(w, tt.status, tt.body)
			})

			tok, err := provider.Refresh(context.Background(), "rt-1")
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAccess, tok.AccessToken)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantRevoked, errors.Is(err, service.ErrCredentialsRevoked))
		})
	}
}
