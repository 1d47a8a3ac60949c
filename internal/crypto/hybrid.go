package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
)

// MessageBundle is one asymmetrically-wrapped, symmetrically-encrypted
// copy of a single message for one specific reader. A sent message
// produces exactly two bundles — one wrapped for the recipient's public
// key and one for the sender's own — each with an independent one-time
// key. All fields are standard base64.
type MessageBundle struct {
	// Ciphertext is the AES-GCM sealed message plaintext.
	Ciphertext string `json:"ciphertext"`
	// EncKey is the one-time AES key wrapped with RSA-OAEP-SHA-256
	// under the reader's public key. Always WrappedKeySize bytes.
	EncKey string `json:"encKey"`
	// IV is the 12-byte AES-GCM nonce.
	IV string `json:"iv"`
}

// EncryptFor encrypts a plaintext for one reader: a fresh one-time
// 256-bit key seals the plaintext, then the key's raw bytes are wrapped
// with the reader's public key. Calling this twice for the same
// plaintext yields bundles with independent one-time keys, so
// compromising one bundle's key never exposes the other copy.
func EncryptFor(plaintext []byte, pub *rsa.PublicKey) (*MessageBundle, error) {
	key, err := RandomBytes(AESKeySize)
	if err != nil {
		return nil, err
	}
	defer Zero(key)

	nonce, err := RandomNonce()
	if err != nil {
		return nil, err
	}

	ct, err := Seal(key, nonce, plaintext)
	if err != nil {
		return nil, err
	}

	wrapped, err := rsa.EncryptOAEP(sha256.New(), reader(), pub, key, nil)
	if err != nil {
		return nil, err
	}

	return &MessageBundle{
		Ciphertext: ToBase64(ct),
		EncKey:     ToBase64(wrapped),
		IV:         ToBase64(nonce),
	}, nil
}

// DecryptWith recovers the plaintext from a bundle using the reader's
// private key. Wrong key material and corrupted bundles are not
// distinguished: every failure collapses to ErrDecryptFailed so callers
// can render a per-message placeholder instead of aborting a whole
// conversation load.
func DecryptWith(bundle *MessageBundle, priv *rsa.PrivateKey) ([]byte, error) {
	ct, err := FromBase64(bundle.Ciphertext)
	if err != nil {
		return nil, ErrDecryptFailed
	}

	wrapped, err := FromBase64(bundle.EncKey)
	if err != nil {
		return nil, ErrDecryptFailed
	}

	nonce, err := FromBase64(bundle.IV)
	if err != nil || len(nonce) != AESNonceSize {
		return nil, ErrDecryptFailed
	}

	key, err := rsa.DecryptOAEP(sha256.New(), nil, priv, wrapped, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	defer Zero(key)

	plaintext, err := Open(key, nonce, ct)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}
