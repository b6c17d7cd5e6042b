// Package credential provides password hashing and verification.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for new hashes. Hashing at 12 rounds is
// CPU-bound and takes on the order of hundreds of milliseconds.
const bcryptCost = 12

// Hash creates a bcrypt hash of the given plaintext password.
// The salt is generated internally and embedded in the returned value,
// so the output is safe to store and compare later without the plaintext.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify checks whether the plaintext password matches the stored hash.
// It fails closed: a malformed or truncated hash returns false rather
// than an error.
func Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
