package cipherchat

import (
	"errors"
	"fmt"

	"github.com/cipherchat/core-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrWrongPassphrase is returned when a private key envelope cannot
	// be unwrapped. A wrong passphrase and a corrupted envelope are
	// deliberately indistinguishable.
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// ErrWrongPassword is returned when a backup cannot be decrypted.
	// A wrong password and a tampered backup are deliberately
	// indistinguishable.
	ErrWrongPassword = errors.New("wrong backup password")

	// ErrInvalidFormat is returned when a document fails structural
	// validation (bad JSON, missing magic or version) before any
	// cryptographic work is attempted.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrDecryptFailed is returned when a message bundle cannot be
	// decrypted with the supplied private key.
	ErrDecryptFailed = errors.New("message could not be decrypted")

	// ErrOwnershipMismatch is returned when a backup's declared owner
	// does not match the identity performing the restore.
	ErrOwnershipMismatch = errors.New("backup belongs to a different account")

	// ErrSessionClosed is returned when operations are attempted on a
	// closed session.
	ErrSessionClosed = errors.New("session has been closed")

	// ErrInvalidPublicKey is returned when a public key cannot be
	// parsed or is not an RSA key.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key cannot be
	// parsed or is not an RSA key.
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// EntropyError reports a failure of the system entropy source. It is
// fatal: callers must not retry, since retrying a broken entropy source
// is unsafe.
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

// wrapCryptoError converts internal crypto errors to public sentinel
// errors so that errors.Is() checks work correctly. Context-dependent
// mappings (ErrWrongPassphrase vs ErrWrongPassword) stay at the call
// sites that know the context.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	var entropyErr *crypto.EntropyError
	if errors.As(err, &entropyErr) {
		return &EntropyError{Err: entropyErr.Err}
	}

	if errors.Is(err, crypto.ErrInvalidPublicKey) {
		return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if errors.Is(err, crypto.ErrInvalidPrivateKey) {
		return fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if errors.Is(err, crypto.ErrDecryptFailed) {
		return ErrDecryptFailed
	}

	return err
}
