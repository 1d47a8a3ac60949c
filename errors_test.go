package cipherchat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cipherchat/core-go/internal/crypto"
)

func TestWrapCryptoError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"invalid public key", crypto.ErrInvalidPublicKey, ErrInvalidPublicKey},
		{"invalid private key", crypto.ErrInvalidPrivateKey, ErrInvalidPrivateKey},
		{"decrypt failed", crypto.ErrDecryptFailed, ErrDecryptFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapCryptoError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestWrapCryptoError_Entropy(t *testing.T) {
	cause := errors.New("entropy pool exhausted")
	got := wrapCryptoError(&crypto.EntropyError{Err: cause})

	var entropyErr *EntropyError
	assert.ErrorAs(t, got, &entropyErr)
	assert.ErrorIs(t, got, cause)
}

func TestWrapCryptoError_Passthrough(t *testing.T) {
	cause := errors.New("unrelated")
	assert.Equal(t, cause, wrapCryptoError(cause))
}
