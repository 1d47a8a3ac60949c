package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey stretches a passphrase into an AES-256 key using
// PBKDF2-HMAC-SHA-256. It is a pure function of its inputs: the same
// passphrase, salt, and iteration count always yield the same key.
//
// Iteration counts are a security/latency tradeoff fixed per call site
// (VaultIterations for the private key vault, BackupIterations for
// backups) and are deliberately slow — expect tens to hundreds of
// milliseconds. Callers on an interactive path should dispatch the call
// to a worker.
func DeriveKey(passphrase, salt []byte, iterations int) []byte {
	return pbkdf2.Key(passphrase, salt, iterations, AESKeySize, sha256.New)
}
