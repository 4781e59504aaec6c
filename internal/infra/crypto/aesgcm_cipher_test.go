package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"calbridge/config"
	domainerrors "calbridge/internal/domain/errors"
	"calbridge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *aesGCMCipher {
	t.Helper()

	c, err := NewAESGCMCipher("test-key-material", "test-salt")
	require.NoError(t, err)

	return c.(*aesGCMCipher)
}

func TestAESGCMCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	inputs := []string{
		"ya29.a0AfH6SMBx",
		"1//0gLong-lived-refresh-token",
		"x",
		strings.Repeat("long token ", 200),
		"ünïcødé 令牌",
	}

	for _, in := range inputs {
		sealed, err := c.Encrypt(in)
		require.NoError(t, err)
		assert.NotContains(t, sealed, in)

		opened, err := c.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, in, opened)
	}
}

func TestAESGCMCipher_FreshNoncePerCall(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAESGCMCipher_SameKeyAcrossInstances(t *testing.T) {
	writer := newTestCipher(t)
	reader := newTestCipher(t)

	sealed, err := writer.Encrypt("shared")
	require.NoError(t, err)

	opened, err := reader.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "shared", opened)
}

func TestAESGCMCipher_DecryptFailures(t *testing.T) {
	c := newTestCipher(t)
	other, err := NewAESGCMCipher("different-key", "test-salt")
	require.NoError(t, err)

	sealed, err := c.Encrypt("secret")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	foreign, err := other.Encrypt("secret")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "not base64", input: "%%%"},
		{name: "too short", input: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "tampered", input: tampered},
		{name: "other key", input: foreign},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrDecryptionFailed))
		})
	}
}

func TestAESGCMCipher_EmptyPlaintextRoundTrips(t *testing.T) {
	c := newTestCipher(t)

	sealed, err := c.Encrypt("")
	require.NoError(t, err)

	opened, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestNewCredentialCipher_RequiresKey(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewCredentialCipher(cfg)
	assert.Error(t, err)

	cfg.Encryption.Key = "k"
	cfg.Encryption.Salt = "s"
	c, err := NewCredentialCipher(cfg)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
