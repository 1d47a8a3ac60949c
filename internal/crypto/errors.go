package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationFailed is returned when AEAD decryption fails.
	// It means "wrong key or tampered ciphertext" and is never
	// distinguished further.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDecryptFailed is returned when a message bundle cannot be
	// decrypted, regardless of which step failed.
	ErrDecryptFailed = errors.New("message decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSaltSize is returned when the salt size is invalid.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrInvalidPublicKey is returned when a public key cannot be parsed
	// or is not an RSA key.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key cannot be
	// parsed or is not an RSA key.
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// EntropyError reports a failure of the system entropy source. It is
// fatal and non-retryable: retrying a broken entropy source is unsafe.
type EntropyError struct {
	Err error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("entropy source failure: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EntropyError) Unwrap() error {
	return e.Err
}
