package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// NewOriginHasher returns a salted one-way hasher for submitter network
// origins. The raw origin must never be persisted; with no salt
// configured it returns a fixed opaque marker rather than falling back
// to an unsalted hash.
func NewOriginHasher(salt string) func(string) string {
	return func(origin string) string {
		if origin == "" {
			return ""
		}
		if salt == "" {
			return "origin:unset-salt"
		}
		sum := sha256.Sum256([]byte(salt + ":" + origin))
		return hex.EncodeToString(sum[:])
	}
}

// NewSessionID generates the opaque per-login token used to correlate a
// session's actions across audit entries and rate limiting.
func NewSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform source is broken
		panic(err)
	}
	return hex.EncodeToString(buf)
}
