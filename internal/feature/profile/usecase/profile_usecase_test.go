package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	authentity "tuneeng_backend/internal/feature/auth/domain/entity"
	authusecase "tuneeng_backend/internal/feature/auth/usecase"
)

type mockUserReader struct {
	FindByIDFunc func(ctx context.Context, id uint) (*authentity.User, error)
}

func (m *mockUserReader) FindByID(ctx context.Context, id uint) (*authentity.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func knownUser() *mockUserReader {
	return &mockUserReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*authentity.User, error) {
			return &authentity.User{
				ID:       id,
				Email:    "demo@example.com",
				FullName: "Demo User",
				Username: "demo",
			}, nil
		},
	}
}

func unknownUser() *mockUserReader {
	return &mockUserReader{
		FindByIDFunc: func(ctx context.Context, id uint) (*authentity.User, error) {
			return nil, authusecase.ErrUserNotFound
		},
	}
}

func TestProfileUsecase_Profile(t *testing.T) {
	t.Run("identity comes from the store, stats are canned", func(t *testing.T) {
		uc := NewProfileUsecase(knownUser())

		profile, err := uc.Profile(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, uint(5), profile.UserID)
		assert.Equal(t, "demo@example.com", profile.Email)
		assert.Equal(t, "Demo User", profile.FullName)
		assert.Equal(t, 1200, profile.LearningStats.TotalPracticeTime)
		assert.Equal(t, 85.5, profile.LearningStats.SkillProgress["listening"])
		assert.Equal(t, true, profile.Preferences["notifications"])
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := NewProfileUsecase(unknownUser())

		_, err := uc.Profile(context.Background(), 5)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestProfileUsecase_Update(t *testing.T) {
	uc := NewProfileUsecase(knownUser())

	t.Run("provided fields override stored identity", func(t *testing.T) {
		name := "New Name"
		bio := "hello"
		profile, err := uc.Update(context.Background(), 5, ProfileUpdate{FullName: &name, Bio: &bio})
		assert.NoError(t, err)
		assert.Equal(t, "New Name", profile.FullName)
		assert.Equal(t, "demo", profile.Username)
		assert.Equal(t, "hello", *profile.Bio)
	})

	t.Run("omitted fields fall back to stored identity", func(t *testing.T) {
		profile, err := uc.Update(context.Background(), 5, ProfileUpdate{})
		assert.NoError(t, err)
		assert.Equal(t, "Demo User", profile.FullName)
		assert.Equal(t, "demo", profile.Username)
		assert.Nil(t, profile.Bio)
	})
}

func TestProfileUsecase_Stats(t *testing.T) {
	uc := NewProfileUsecase(knownUser())

	stats, err := uc.Stats(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, 45, stats.ExercisesCompleted)
	assert.Equal(t, 7, stats.CurrentStreak)
	assert.Contains(t, stats.BadgesEarned, "listening_master")

	_, err = NewProfileUsecase(unknownUser()).Stats(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
