package cipherchat

import (
	"github.com/cipherchat/core-go/internal/crypto"
)

// Identity is a freshly issued key pair, created once at registration.
// The public half is freely shareable; the private half must be wrapped
// with Wrap before it leaves process memory.
type Identity struct {
	keyPair *crypto.KeyPair
}

// GenerateIdentity issues a new RSA-2048 identity key pair. It fails
// only on entropy source exhaustion, surfaced as a fatal *EntropyError.
func GenerateIdentity() (*Identity, error) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return &Identity{keyPair: kp}, nil
}

// PublicKeyPEM returns the PEM rendering of the public key for display
// and interchange.
func (id *Identity) PublicKeyPEM() string {
	return id.keyPair.PublicPEM
}

// Fingerprint returns the human-comparable digest of the public key for
// out-of-band verification.
func (id *Identity) Fingerprint() string {
	return crypto.Fingerprint(id.keyPair.PublicDER)
}

// Wrap seals the private key under a passphrase for storage. Fresh salt
// and nonce are drawn on every call; the resulting envelope is opaque to
// anyone without the passphrase.
func (id *Identity) Wrap(passphrase string) (*PrivateKeyEnvelope, error) {
	env, err := crypto.WrapPrivateKey(id.keyPair.Private, passphrase)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return envelopeFromInternal(env), nil
}

// StartSession opens a session directly from a fresh identity, for use
// right after registration when the key is already in memory. The
// session owns an independent copy of the key: closing it scrubs the
// session's copy only.
func (id *Identity) StartSession() *Session {
	kp := &crypto.KeyPair{
		Private:   clonePrivateKey(id.keyPair.Private),
		PublicDER: id.keyPair.PublicDER,
		PublicPEM: id.keyPair.PublicPEM,
	}
	return newSession(kp)
}

// PrivateKeyEnvelope is the serialized, passphrase-protected form of a
// private key. All binary fields are standard base64.
type PrivateKeyEnvelope struct {
	// CT is the sealed PKCS#8 private key.
	CT string `json:"ct"`
	// Salt is the 16-byte key derivation salt.
	Salt string `json:"salt"`
	// IV is the 12-byte AEAD nonce.
	IV string `json:"iv"`
}

func (e *PrivateKeyEnvelope) internal() *crypto.PrivateKeyEnvelope {
	return &crypto.PrivateKeyEnvelope{CT: e.CT, Salt: e.Salt, IV: e.IV}
}

func envelopeFromInternal(env *crypto.PrivateKeyEnvelope) *PrivateKeyEnvelope {
	return &PrivateKeyEnvelope{CT: env.CT, Salt: env.Salt, IV: env.IV}
}

// FingerprintPEM computes the fingerprint of a PEM-encoded public key,
// e.g. a contact's key received from the server.
func FingerprintPEM(publicKeyPEM string) (string, error) {
	_, der, err := crypto.ParsePublicKeyPEM(publicKeyPEM)
	if err != nil {
		return "", wrapCryptoError(err)
	}
	return crypto.Fingerprint(der), nil
}
