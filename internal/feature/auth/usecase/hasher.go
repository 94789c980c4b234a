package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input bound; longer inputs are rejected
// rather than silently truncated.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// Empty or oversized input is rejected.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", &ValidationError{Field: "password", Message: "password cannot be empty"}
	}
	if len(plain) > maxPasswordBytes {
		return "", &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes)}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the bcrypt hash. It returns
// false for any mismatch or malformed hash and never panics on
// attacker-controlled input.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
