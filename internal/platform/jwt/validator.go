package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the only error surfaced by token validation. Callers
// must not learn whether a token was malformed, tampered with or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Validator defines the interface for JWT token validation.
type Validator interface {
	// ValidateToken verifies a token and returns the subject user ID.
	ValidateToken(token string) (uint, error)
}

// validator implements the Validator interface.
type validator struct {
	secret []byte
}

// NewValidator creates a new JWT validator with the provided secret.
func NewValidator(secret string) Validator {
	return &validator{secret: []byte(secret)}
}

// ValidateToken parses the token, checks the HMAC signature and expiry,
// and extracts the subject claim. Every failure maps to ErrInvalidToken.
func (v *validator) ValidateToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is treated as tampering.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
