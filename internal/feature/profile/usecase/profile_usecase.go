// Package usecase assembles user profiles. Identity fields come from the
// user store; learning stats and preferences are fixed placeholder data
// until progress tracking persists real numbers.
package usecase

import (
	"context"
	"errors"

	authentity "tuneeng_backend/internal/feature/auth/domain/entity"
	authusecase "tuneeng_backend/internal/feature/auth/usecase"
	"tuneeng_backend/internal/feature/profile/domain/entity"
)

// ErrUserNotFound is returned when the profile owner does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserReader resolves the identity half of a profile.
type UserReader interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// ProfileUpdate carries the mutable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	FullName  *string
	Username  *string
	Bio       *string
	AvatarURL *string
}

// ProfileUsecase reads and updates user profiles.
type ProfileUsecase interface {
	Profile(ctx context.Context, userID uint) (*entity.Profile, error)
	Update(ctx context.Context, userID uint, update ProfileUpdate) (*entity.Profile, error)
	Stats(ctx context.Context, userID uint) (*entity.LearningStats, error)
}

type profileUsecase struct {
	users UserReader
}

func NewProfileUsecase(users UserReader) ProfileUsecase {
	return &profileUsecase{users: users}
}

func placeholderStats() entity.LearningStats {
	return entity.LearningStats{
		TotalPracticeTime:  1200,
		ExercisesCompleted: 45,
		CurrentStreak:      7,
		LongestStreak:      15,
		SkillProgress: map[string]float64{
			"listening": 85.5,
			"speaking":  78.2,
			"reading":   92.0,
			"writing":   88.7,
		},
		BadgesEarned: []string{"first_exercise", "week_streak", "listening_master"},
	}
}

func (u *profileUsecase) Profile(ctx context.Context, userID uint) (*entity.Profile, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bio := "Learning English for corporate success!"
	return &entity.Profile{
		UserID:        user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		Username:      user.Username,
		Bio:           &bio,
		LearningStats: placeholderStats(),
		Preferences: map[string]any{
			"notifications": true,
			"theme":         "light",
			"language":      "en",
		},
	}, nil
}

// Update echoes the requested changes over the stored identity. Nothing is
// persisted until profile columns exist on the user record.
func (u *profileUsecase) Update(ctx context.Context, userID uint, update ProfileUpdate) (*entity.Profile, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		UserID:        user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		Username:      user.Username,
		Bio:           update.Bio,
		AvatarURL:     update.AvatarURL,
		LearningStats: placeholderStats(),
		Preferences:   map[string]any{},
	}
	if update.FullName != nil {
		profile.FullName = *update.FullName
	}
	if update.Username != nil {
		profile.Username = *update.Username
	}
	return profile, nil
}

func (u *profileUsecase) Stats(ctx context.Context, userID uint) (*entity.LearningStats, error) {
	if _, err := u.findUser(ctx, userID); err != nil {
		return nil, err
	}
	stats := placeholderStats()
	return &stats, nil
}

func (u *profileUsecase) findUser(ctx context.Context, userID uint) (*authentity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
