// Package usecase handles contact form submissions.
package usecase

import (
	"context"
	"time"

	"tuneeng_backend/internal/feature/contact/domain/entity"
)

// SubmissionRepository persists contact submissions.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
}

// ContactUsecase accepts contact form inquiries.
type ContactUsecase interface {
	Submit(ctx context.Context, name, email, message string) (*entity.Submission, error)
}

type contactUsecase struct {
	submissions SubmissionRepository
	now         func() time.Time
}

func NewContactUsecase(submissions SubmissionRepository) ContactUsecase {
	return &contactUsecase{submissions: submissions, now: time.Now}
}

// NewContactUsecaseWithClock injects the clock for tests.
func NewContactUsecaseWithClock(submissions SubmissionRepository, now func() time.Time) ContactUsecase {
	return &contactUsecase{submissions: submissions, now: now}
}

// Submit stores the inquiry under a timestamp-derived tracking id.
func (u *contactUsecase) Submit(ctx context.Context, name, email, message string) (*entity.Submission, error) {
	submission := &entity.Submission{
		SubmissionID: "CONTACT-" + u.now().Format("20060102150405"),
		Name:         name,
		Email:        email,
		Message:      message,
	}
	if err := u.submissions.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}
