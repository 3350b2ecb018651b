// Package sessionid creates session identifiers and the digests under which
// stores keep them, so a leaked store dump cannot be replayed as cookies.
package sessionid

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// New returns a random session identifier.
func New() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Digest returns the hex BLAKE2b-256 of id.
func Digest(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}
