// Package crypto implements the credential cipher used for tokens at rest.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"

	"calbridge/config"
	domainerrors "calbridge/internal/domain/errors"
	"calbridge/internal/domain/service"
	"calbridge/internal/errors"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters, the interactive-login profile.
const (
	scryptN       = 1 << 14
	scryptR       = 8
	scryptP       = 1
	derivedKeyLen = 32
)

// aesGCMCipher seals each value with AES-256-GCM under a fresh random nonce.
// Output is base64(nonce || ciphertext || tag).
type aesGCMCipher struct {
	aead  cipher.AEAD
	nonce io.Reader
}

// NewCredentialCipher derives the AES key from encryption.key and encryption.salt.
func NewCredentialCipher(cfg *config.Config) (service.CredentialCipher, error) {
	return NewAESGCMCipher(cfg.Encryption.Key, cfg.Encryption.Salt)
}

// NewAESGCMCipher derives a 256-bit key with scrypt. The derivation runs once.
func NewAESGCMCipher(keyMaterial, salt string) (service.CredentialCipher, error) {
	if keyMaterial == "" {
		return nil, errors.New("encryption key material must not be empty")
	}

	key, err := scrypt.Key([]byte(keyMaterial), []byte(salt), scryptN, scryptR, scryptP, derivedKeyLen)
	if err != nil {
		return nil, errors.Wrap(err, "derive encryption key")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "create aes cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "create gcm")
	}

	return &aesGCMCipher{aead: aead, nonce: rand.Reader}, nil
}

func (c *aesGCMCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(c.nonce, nonce); err != nil {
		return "", errors.Wrap(domainerrors.ErrEncryptionFailed, err.Error())
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *aesGCMCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrDecryptionFailed, "malformed base64")
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize+c.aead.Overhead() {
		return "", errors.Wrap(domainerrors.ErrDecryptionFailed, "ciphertext too short")
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrDecryptionFailed, "authentication failed")
	}

	return string(plaintext), nil
}
