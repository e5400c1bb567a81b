package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt cost factor applied to every new password
// hash. bcrypt generates a fresh random salt per call, so two hashes of the
// same password never compare equal as strings.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword produces a salted, one-way bcrypt digest of the given
// plaintext password.
//
// Returns an error only if the password exceeds bcrypt's 72-byte input limit
// or the underlying random source fails.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash.
//
// Comparison is constant-time inside bcrypt. A malformed or foreign-format
// hash fails closed: the function returns false, never an ambiguous success.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
