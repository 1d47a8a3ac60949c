package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const fingerprintGroupSize = 4

// Fingerprint computes a human-comparable digest of a public key for
// out-of-band verification: SHA-256 over the PKIX DER bytes, rendered as
// uppercase hex in 4-character blocks separated by spaces. Deterministic
// and total over valid input.
func Fingerprint(publicDER []byte) string {
	digest := sha256.Sum256(publicDER)
	hexed := strings.ToUpper(hex.EncodeToString(digest[:]))

	groups := make([]string, 0, len(hexed)/fingerprintGroupSize)
	for i := 0; i < len(hexed); i += fingerprintGroupSize {
		groups = append(groups, hexed[i:i+fingerprintGroupSize])
	}
	return strings.Join(groups, " ")
}
