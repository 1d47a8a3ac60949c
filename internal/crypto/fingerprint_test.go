package crypto

import (
	"regexp"
	"strings"
	"testing"
)

func TestFingerprint_Format(t *testing.T) {
	kp := testKeyPair(t, 0)

	fp := Fingerprint(kp.PublicDER)

	// SHA-256 is 64 hex chars: 16 groups of 4, 15 separating spaces.
	groups := strings.Split(fp, " ")
	if len(groups) != 16 {
		t.Fatalf("group count = %d, want 16", len(groups))
	}

	groupRe := regexp.MustCompile(`^[0-9A-F]{4}$`)
	for i, g := range groups {
		if !groupRe.MatchString(g) {
			t.Errorf("group %d = %q, want 4 uppercase hex chars", i, g)
		}
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	kp := testKeyPair(t, 0)

	if Fingerprint(kp.PublicDER) != Fingerprint(kp.PublicDER) {
		t.Error("same key produced different fingerprints")
	}
}

func TestFingerprint_DistinctKeys(t *testing.T) {
	kp1 := testKeyPair(t, 0)
	kp2 := testKeyPair(t, 1)

	if Fingerprint(kp1.PublicDER) == Fingerprint(kp2.PublicDER) {
		t.Error("different keys produced the same fingerprint")
	}
}
