package crypto

import (
	"crypto/rsa"
)

// PrivateKeyEnvelope is the at-rest form of a passphrase-protected
// private key. All fields are standard base64.
type PrivateKeyEnvelope struct {
	// CT is the AES-GCM sealed PKCS#8 private key.
	CT string `json:"ct"`
	// Salt is the 16-byte PBKDF2 salt, fresh per wrap.
	Salt string `json:"salt"`
	// IV is the 12-byte AES-GCM nonce, fresh per wrap.
	IV string `json:"iv"`
}

// WrapPrivateKey seals a private key under a passphrase-derived key.
// Salt and nonce are freshly random on every call, so wrapping the same
// key twice yields unrelated envelopes.
func WrapPrivateKey(priv *rsa.PrivateKey, passphrase string) (*PrivateKeyEnvelope, error) {
	der, err := MarshalPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	defer Zero(der)

	salt, err := RandomSalt()
	if err != nil {
		return nil, err
	}

	nonce, err := RandomNonce()
	if err != nil {
		return nil, err
	}

	key := DeriveKey([]byte(passphrase), salt, VaultIterations)
	defer Zero(key)

	ct, err := Seal(key, nonce, der)
	if err != nil {
		return nil, err
	}

	return &PrivateKeyEnvelope{
		CT:   ToBase64(ct),
		Salt: ToBase64(salt),
		IV:   ToBase64(nonce),
	}, nil
}

// UnwrapPrivateKey recovers the private key from an envelope. Every
// failure mode — undecodable fields, a tampered ciphertext, or a wrong
// passphrase — collapses to ErrAuthenticationFailed. Distinguishing a
// wrong passphrase from a corrupted envelope would leak envelope
// integrity to an attacker probing passphrases; the two are
// operationally identical anyway.
func UnwrapPrivateKey(env *PrivateKeyEnvelope, passphrase string) (*rsa.PrivateKey, error) {
	ct, err := FromBase64(env.CT)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	salt, err := FromBase64(env.Salt)
	if err != nil || len(salt) != SaltSize {
		return nil, ErrAuthenticationFailed
	}

	nonce, err := FromBase64(env.IV)
	if err != nil || len(nonce) != AESNonceSize {
		return nil, ErrAuthenticationFailed
	}

	key := DeriveKey([]byte(passphrase), salt, VaultIterations)
	defer Zero(key)

	der, err := Open(key, nonce, ct)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	defer Zero(der)

	priv, err := ParsePrivateKey(der)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return priv, nil
}
