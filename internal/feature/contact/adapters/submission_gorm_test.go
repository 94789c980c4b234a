package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tuneeng_backend/internal/feature/contact/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Submission{}))
	return db
}

func TestSubmissionGorm_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionGorm(db)

	submission := &entity.Submission{
		SubmissionID: "CONTACT-20240315093045",
		Name:         "Jane",
		Email:        "jane@example.com",
		Message:      "hello",
	}
	assert.NoError(t, repo.Create(context.Background(), submission))
	assert.NotZero(t, submission.ID)

	var stored entity.Submission
	require.NoError(t, db.First(&stored, submission.ID).Error)
	assert.Equal(t, "CONTACT-20240315093045", stored.SubmissionID)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.False(t, stored.CreatedAt.IsZero())
}
