// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the email is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUsernameAlreadyTaken is returned when the given or derived username
	// collides with an existing user.
	ErrUsernameAlreadyTaken = errors.New("username already taken")

	// ErrDuplicateUser is returned by the store when a uniqueness constraint
	// fires at commit time, covering registrations racing past the
	// conflict pre-checks.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned on login for both an unknown email
	// and a wrong password, so the two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
