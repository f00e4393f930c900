package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashAccessKey hashes a role access key for storage in configuration.
func HashAccessKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckAccessKey reports whether key matches the stored bcrypt hash.
func CheckAccessKey(hash, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
