package cipherchat

import (
	"sync"
	"testing"
)

// Identity generation is slow enough that tests share two pre-generated
// identities. They are only ever read.
var (
	testIDOnce sync.Once
	testIDErr  error
	testIDs    [2]*Identity
)

func testIdentity(t *testing.T, i int) *Identity {
	t.Helper()

	testIDOnce.Do(func() {
		for j := range testIDs {
			id, err := GenerateIdentity()
			if err != nil {
				testIDErr = err
				return
			}
			testIDs[j] = id
		}
	})
	if testIDErr != nil {
		t.Fatalf("GenerateIdentity() error = %v", testIDErr)
	}
	return testIDs[i]
}
