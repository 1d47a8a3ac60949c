package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Seal encrypts plaintext using AES-256-GCM with a detached nonce. The
// nonce must be freshly random for every call with the same key; Seal
// does not enforce this.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return aesGCM.Seal(nil, nonce, plaintext, nil), nil
}

// Open decrypts an AES-256-GCM ciphertext. Any bit flip in the
// ciphertext, nonce, or key yields ErrAuthenticationFailed, never
// partial plaintext.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return aesGCM, nil
}
