// Package usecase serves leaderboard rankings from a LeaderboardRepository.
package usecase

import (
	"context"

	"tuneeng_backend/internal/feature/leaderboard/domain/entity"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// LeaderboardRepository provides ranked entries and per-user positions.
type LeaderboardRepository interface {
	Top(ctx context.Context, skillType string, limit int) ([]entity.Entry, error)
	UserRank(ctx context.Context, userID uint) (*entity.UserRank, error)
}

// LeaderboardUsecase exposes leaderboard queries with limit clamping.
type LeaderboardUsecase interface {
	Rankings(ctx context.Context, skillType string, limit int) ([]entity.Entry, error)
	UserRank(ctx context.Context, userID uint) (*entity.UserRank, error)
}

type leaderboardUsecase struct {
	repo LeaderboardRepository
}

func NewLeaderboardUsecase(repo LeaderboardRepository) LeaderboardUsecase {
	return &leaderboardUsecase{repo: repo}
}

// Rankings clamps limit to [1, 1000], defaulting to 100 when unset.
func (u *leaderboardUsecase) Rankings(ctx context.Context, skillType string, limit int) ([]entity.Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return u.repo.Top(ctx, skillType, limit)
}

func (u *leaderboardUsecase) UserRank(ctx context.Context, userID uint) (*entity.UserRank, error) {
	return u.repo.UserRank(ctx, userID)
}
