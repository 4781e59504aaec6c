// Package service declares the ports the use cases depend on.
// Implementations live under internal/infra.
package service

// CredentialCipher encrypts secrets before they reach the session store.
type CredentialCipher interface {
	// Encrypt returns an opaque, printable ciphertext for plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Tampered or malformed input is an error.
	Decrypt(ciphertext string) (string, error)
}
