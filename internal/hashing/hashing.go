package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const hexBase = 16

// GenerateUUID returns a random (version 4) UUID in its canonical text form.
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateULID returns a lexicographically sortable identifier.
// IDs generated within the same millisecond by this process are strictly increasing.
func GenerateULID() string {
	return ulid.Make().String()
}

// HashString returns the hex-encoded SHA-256 digest of s.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// FastHash returns the hex-encoded 64-bit xxHash of s.
// It is not suitable for security purposes.
func FastHash(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), hexBase)
}
