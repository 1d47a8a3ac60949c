package cipherchat

import (
	"crypto/rsa"
	"errors"
	"math/big"
	"sync"

	"github.com/cipherchat/core-go/internal/crypto"
)

// Session owns the unencrypted private key for the duration of a login.
// It is created once on a successful Unlock (or from a fresh Identity),
// is safe for concurrent use, and must be closed on logout so the key
// material is scrubbed. A session is never serialized.
type Session struct {
	mu      sync.RWMutex
	keyPair *crypto.KeyPair
	closed  bool

	// Cached public values; remain readable after Close.
	publicPEM   string
	fingerprint string
}

func newSession(kp *crypto.KeyPair) *Session {
	return &Session{
		keyPair:     kp,
		publicPEM:   kp.PublicPEM,
		fingerprint: crypto.Fingerprint(kp.PublicDER),
	}
}

// Unlock recovers a private key from its envelope and opens a session
// around it. Any unwrap failure — wrong passphrase or corrupted
// envelope — is reported as ErrWrongPassphrase. The key derivation is
// deliberately slow; call this from a worker, not an interactive thread.
func Unlock(envelope *PrivateKeyEnvelope, passphrase string) (*Session, error) {
	priv, err := crypto.UnwrapPrivateKey(envelope.internal(), passphrase)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthenticationFailed) {
			return nil, ErrWrongPassphrase
		}
		return nil, wrapCryptoError(err)
	}

	kp, err := crypto.KeyPairFromPrivate(priv)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return newSession(kp), nil
}

// PublicKeyPEM returns the session identity's public key.
func (s *Session) PublicKeyPEM() string {
	return s.publicPEM
}

// Fingerprint returns the session identity's key fingerprint.
func (s *Session) Fingerprint() string {
	return s.fingerprint
}

// Decrypt recovers the plaintext of one bundle with the session's
// private key. Failures are per-message: a corrupted bundle yields
// ErrDecryptFailed and must not prevent callers from decrypting the
// rest of a conversation. Concurrent calls are safe.
func (s *Session) Decrypt(bundle *MessageBundle) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrSessionClosed
	}

	plaintext, err := crypto.DecryptWith(bundle.internal(), s.keyPair.Private)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return plaintext, nil
}

// EncryptTo encrypts a plaintext for a recipient, producing both the
// recipient-readable copy and the session's own readable copy.
func (s *Session) EncryptTo(plaintext []byte, recipientPEM string) (*EncryptedMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	return EncryptMessage(plaintext, recipientPEM, s.publicPEM)
}

// Export re-wraps the private key under a passphrase, e.g. when the
// user changes it. The new envelope has fresh salt and nonce.
func (s *Session) Export(passphrase string) (*PrivateKeyEnvelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrSessionClosed
	}

	env, err := crypto.WrapPrivateKey(s.keyPair.Private, passphrase)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return envelopeFromInternal(env), nil
}

// Close invalidates the session and scrubs the private key material.
// It is idempotent; all subsequent operations return ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	zeroPrivateKey(s.keyPair.Private)
	s.keyPair = nil
}

// clonePrivateKey deep-copies an RSA private key so a session can scrub
// its copy on Close without touching the source.
func clonePrivateKey(priv *rsa.PrivateKey) *rsa.PrivateKey {
	clone := &rsa.PrivateKey{
		PublicKey: priv.PublicKey,
		D:         new(big.Int).Set(priv.D),
		Primes:    make([]*big.Int, len(priv.Primes)),
	}
	for i, p := range priv.Primes {
		clone.Primes[i] = new(big.Int).Set(p)
	}
	clone.Precompute()
	return clone
}

// zeroPrivateKey overwrites the secret components of an RSA private key.
// The modulus and exponent are public and left intact.
func zeroPrivateKey(priv *rsa.PrivateKey) {
	if priv == nil {
		return
	}
	priv.D.SetInt64(0)
	for _, p := range priv.Primes {
		p.SetInt64(0)
	}
	priv.Precomputed = rsa.PrecomputedValues{}
}
