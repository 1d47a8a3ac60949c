package crypto

import (
	"sync"
	"testing"
)

// RSA generation is slow enough that tests share a small pool of
// pre-generated key pairs. The keys are only ever read.
var (
	testKeyOnce sync.Once
	testKeyErr  error
	testKeys    [2]*KeyPair
)

func testKeyPair(t *testing.T, i int) *KeyPair {
	t.Helper()

	testKeyOnce.Do(func() {
		for j := range testKeys {
			kp, err := GenerateKeyPair()
			if err != nil {
				testKeyErr = err
				return
			}
			testKeys[j] = kp
		}
	})
	if testKeyErr != nil {
		t.Fatalf("GenerateKeyPair() error = %v", testKeyErr)
	}
	return testKeys[i]
}
