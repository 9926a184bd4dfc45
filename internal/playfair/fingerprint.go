package playfair

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"playfair/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a grid, so two parties can
// confirm they derived the same key table without revealing the keyword.
//
// It hashes the row-major letters with BLAKE2b-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(g domain.Grid) domain.Fingerprint {
	letters := g.Letters()
	sum := blake2b.Sum256(letters[:])
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
