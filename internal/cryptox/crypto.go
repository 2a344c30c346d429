// Package cryptox produces the stored representation of login passwords.
//
// The digest is a single unsalted round of SHA-256, hex encoded. This
// matches the format already present in deployed user stores, so accounts
// provisioned here stay interchangeable with ones created by the
// application itself. It is deliberately deterministic; it is not a
// hardened password-storage scheme and should not be reused elsewhere.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex-encoded SHA-256 digest of the given plaintext.
// Identical inputs always produce identical digests. The empty string is
// hashed like any other value; length and complexity checks are the
// caller's responsibility.
func Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
