// Package entity defines the contact submission model persisted via GORM.
package entity

import "time"

// Submission is a stored contact form inquiry.
type Submission struct {
	ID           uint   `gorm:"primaryKey"`
	SubmissionID string `gorm:"index;size:32;not null"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null"`
	Message      string `gorm:"type:text;not null"`
	CreatedAt    time.Time
}
