// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and profile identity fields.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Email is the user's login key. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This field never stores plaintext and is never serialized outward.
	Password string `gorm:"size:255;not null"`

	// FullName is the user's display name.
	FullName string `gorm:"size:100;not null"`

	// Username is the user's handle. It is derived from the email
	// local-part at registration when not provided, and must be unique.
	Username string `gorm:"uniqueIndex;size:50;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
