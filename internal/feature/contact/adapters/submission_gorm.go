// Package adapters provides the GORM-backed contact submission store.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"tuneeng_backend/internal/feature/contact/domain/entity"
	"tuneeng_backend/internal/feature/contact/usecase"
)

type submissionGorm struct {
	db *gorm.DB
}

var _ usecase.SubmissionRepository = (*submissionGorm)(nil)

func NewSubmissionGorm(db *gorm.DB) usecase.SubmissionRepository {
	return &submissionGorm{db: db}
}

func (r *submissionGorm) Create(ctx context.Context, submission *entity.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}
