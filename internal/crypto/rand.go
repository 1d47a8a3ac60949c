package crypto

import (
	"crypto/rand"
	"io"
)

// randReader is the random source used for key and nonce generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// RandomBytes returns n bytes from the system entropy source. A short or
// failed read is surfaced as a fatal *EntropyError.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(reader(), b); err != nil {
		return nil, &EntropyError{Err: err}
	}
	return b, nil
}

// RandomNonce returns a fresh AES-GCM nonce.
func RandomNonce() ([]byte, error) {
	return RandomBytes(AESNonceSize)
}

// RandomSalt returns a fresh PBKDF2 salt.
func RandomSalt() ([]byte, error) {
	return RandomBytes(SaltSize)
}

// Zero overwrites b with zero bytes. Used to scrub derived and one-time
// keys once they are no longer needed.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
