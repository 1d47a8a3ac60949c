package crypto

import (
	"bytes"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	passphrase := []byte("correct-horse")
	salt := bytes.Repeat([]byte{0xab}, SaltSize)

	k1 := DeriveKey(passphrase, salt, 1000)
	k2 := DeriveKey(passphrase, salt, 1000)

	if len(k1) != AESKeySize {
		t.Errorf("key length = %d, want %d", len(k1), AESKeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("same inputs produced different keys")
	}
}

func TestDeriveKey_InputSensitivity(t *testing.T) {
	passphrase := []byte("correct-horse")
	salt := bytes.Repeat([]byte{0xab}, SaltSize)
	base := DeriveKey(passphrase, salt, 1000)

	tests := []struct {
		name       string
		passphrase []byte
		salt       []byte
		iterations int
	}{
		{"different passphrase", []byte("correct-horsf"), salt, 1000},
		{"case differs", []byte("Correct-Horse"), salt, 1000},
		{"different salt", passphrase, bytes.Repeat([]byte{0xac}, SaltSize), 1000},
		{"different iterations", passphrase, salt, 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := DeriveKey(tt.passphrase, tt.salt, tt.iterations)
			if bytes.Equal(base, k) {
				t.Error("expected a different key")
			}
		})
	}
}

func TestDeriveKey_IterationConstants(t *testing.T) {
	// The iteration counts are part of the envelope formats. A change
	// here silently orphans every existing envelope.
	if VaultIterations != 100000 {
		t.Errorf("VaultIterations = %d, want 100000", VaultIterations)
	}
	if BackupIterations != 150000 {
		t.Errorf("BackupIterations = %d, want 150000", BackupIterations)
	}
}
