package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hash computes the sha256 checksum of the bytes and
// returns the hex encoded digest.
func SHA256Hash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// SHA256HashBytes computes the sha256 checksum of the bytes and
// returns the raw digest.
func SHA256HashBytes(b []byte) [32]byte {
	return sha256.Sum256(b)
}
