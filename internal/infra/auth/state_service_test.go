package auth

import (
	"testing"
	"time"

	"calbridge/config"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_state_secret_key_very_long_for_testing"

func TestStateService_IssueAndParse(t *testing.T) {
	svc := newJWTStateService([]byte(testSecret), time.Minute, time.Now)

	state, err := svc.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, state)

	userID, err := svc.Parse(state)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestStateService_IssueRequiresUser(t *testing.T) {
	svc := newJWTStateService([]byte(testSecret), time.Minute, time.Now)

	_, err := svc.Issue("")
	assert.Error(t, err)
}

func TestStateService_ParseRejects(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	issuer := newJWTStateService([]byte(testSecret), time.Minute, func() time.Time { return issuedAt })

	valid, err := issuer.Issue("user-1")
	require.NoError(t, err)

	foreign, err := newJWTStateService([]byte("another_secret"), time.Minute, func() time.Time { return issuedAt }).Issue("user-1")
	require.NoError(t, err)

	wrongType, err := jwt.NewWithClaims(jwt.SigningMethodHS256, stateClaims{
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		state string
		now   time.Time
	}{
		{name: "garbage", state: "not-a-token", now: issuedAt},
		{name: "foreign secret", state: foreign, now: issuedAt},
		{name: "expired", state: valid, now: issuedAt.Add(2 * time.Minute)},
		{name: "wrong token type", state: wrongType, now: issuedAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := newJWTStateService([]byte(testSecret), time.Minute, func() time.Time { return tt.now })

			_, err := parser.Parse(tt.state)
			assert.True(t, errors.Is(err, service.ErrInvalidState))
		})
	}
}

func TestNewStateService_DerivesKeyFromEncryptionKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Encryption.Key = "test-encryption-key"
	cfg.ApplyDefaults()

	svc, err := NewStateService(cfg)
	require.NoError(t, err)

	state, err := svc.Issue("my-key")
	require.NoError(t, err)
	require.NotEmpty(t, state)

	userID, err := svc.Parse(state)
	require.NoError(t, err)
	assert.Equal(t, "my-key", userID)

	// Another deployment key must not accept the token.
	other := &config.Config{}
	other.Encryption.Key = "another-encryption-key"
	other.ApplyDefaults()

	otherSvc, err := NewStateService(other)
	require.NoError(t, err)

	_, err = otherSvc.Parse(state)
	assert.True(t, errors.Is(err, service.ErrInvalidState))
}

func TestNewStateService_ExplicitSecretWins(t *testing.T) {
	cfg := &config.Config{}
	cfg.Encryption.Key = "test-encryption-key"
	cfg.OAuth.StateSecret = testSecret
	cfg.ApplyDefaults()

	svc, err := NewStateService(cfg)
	require.NoError(t, err)

	state, err := newJWTStateService([]byte(testSecret), time.Minute, time.Now).Issue("user-1")
	require.NoError(t, err)

	userID, err := svc.Parse(state)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestNewStateService_DisabledWithoutKeyMaterial(t *testing.T) {
	svc, err := NewStateService(&config.Config{})
	require.NoError(t, err)

	state, err := svc.Issue("user-1")
	require.NoError(t, err)
	assert.Empty(t, state)

	_, err = svc.Parse("anything")
	assert.True(t, errors.Is(err, service.ErrInvalidState))
}
