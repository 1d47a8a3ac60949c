package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestSeal_Open_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello world")},
		{"json", []byte(`{"foo": "bar", "num": 123}`)},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, AESKeySize)
			if _, err := rand.Read(key); err != nil {
				t.Fatal(err)
			}

			nonce := make([]byte, AESNonceSize)
			if _, err := rand.Read(nonce); err != nil {
				t.Fatal(err)
			}

			ciphertext, err := Seal(key, nonce, tt.plaintext)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			// GCM output is plaintext length plus the tag.
			if len(ciphertext) != len(tt.plaintext)+AESTagSize {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(tt.plaintext)+AESTagSize)
			}

			decrypted, err := Open(key, nonce, ciphertext)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			if !bytes.Equal(decrypted, tt.plaintext) {
				t.Errorf("decrypted = %v, want %v", decrypted, tt.plaintext)
			}
		})
	}
}

func TestSeal_InvalidKeySize(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
	}{
		{"empty", 0},
		{"too short", 16},
		{"too long", 64},
	}

	nonce := make([]byte, AESNonceSize)
	plaintext := []byte("test")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, tt.keySize)
			_, err := Seal(key, nonce, plaintext)
			if !errors.Is(err, ErrInvalidKeySize) {
				t.Errorf("expected ErrInvalidKeySize, got %v", err)
			}
		})
	}
}

func TestSeal_InvalidNonceSize(t *testing.T) {
	tests := []struct {
		name      string
		nonceSize int
	}{
		{"empty", 0},
		{"too short", 8},
		{"too long", 16},
	}

	key := make([]byte, AESKeySize)
	plaintext := []byte("test")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonce := make([]byte, tt.nonceSize)
			_, err := Seal(key, nonce, plaintext)
			if !errors.Is(err, ErrInvalidNonceSize) {
				t.Errorf("expected ErrInvalidNonceSize, got %v", err)
			}
		})
	}
}

func TestOpen_Tampered(t *testing.T) {
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	nonce := make([]byte, AESNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	ciphertext, err := Seal(key, nonce, []byte("attack at dawn"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	// Flip a single bit in every ciphertext byte position in turn.
	for i := range ciphertext {
		tampered := bytes.Clone(ciphertext)
		tampered[i] ^= 0x01

		if _, err := Open(key, nonce, tampered); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("Open() with bit flip at %d: expected ErrAuthenticationFailed, got %v", i, err)
		}
	}
}

func TestOpen_WrongNonce(t *testing.T) {
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	nonce := make([]byte, AESNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	ciphertext, err := Seal(key, nonce, []byte("attack at dawn"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	wrongNonce := bytes.Clone(nonce)
	wrongNonce[0] ^= 0x01

	if _, err := Open(key, wrongNonce, ciphertext); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestOpen_WrongKey(t *testing.T) {
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	nonce := make([]byte, AESNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatal(err)
	}

	ciphertext, err := Seal(key, nonce, []byte("attack at dawn"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	wrongKey := bytes.Clone(key)
	wrongKey[31] ^= 0x01

	if _, err := Open(wrongKey, nonce, ciphertext); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestRandomBytes_Sizes(t *testing.T) {
	nonce, err := RandomNonce()
	if err != nil {
		t.Fatalf("RandomNonce() error = %v", err)
	}
	if len(nonce) != AESNonceSize {
		t.Errorf("nonce length = %d, want %d", len(nonce), AESNonceSize)
	}

	salt, err := RandomSalt()
	if err != nil {
		t.Fatalf("RandomSalt() error = %v", err)
	}
	if len(salt) != SaltSize {
		t.Errorf("salt length = %d, want %d", len(salt), SaltSize)
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func TestRandomBytes_EntropyFailure(t *testing.T) {
	restore := SetRandReaderForTesting(brokenReader{})
	defer restore()

	_, err := RandomBytes(32)
	var entropyErr *EntropyError
	if !errors.As(err, &entropyErr) {
		t.Fatalf("expected *EntropyError, got %v", err)
	}
}
