// Package adapters provides leaderboard data sources.
package adapters

import (
	"context"

	"tuneeng_backend/internal/feature/leaderboard/domain/entity"
	"tuneeng_backend/internal/feature/leaderboard/usecase"
)

// staticLeaderboard serves a fixed ranking until real score aggregation
// lands. It stands behind the same repository interface the aggregation
// will implement.
type staticLeaderboard struct{}

var _ usecase.LeaderboardRepository = (*staticLeaderboard)(nil)

func NewStaticLeaderboard() usecase.LeaderboardRepository {
	return &staticLeaderboard{}
}

var entries = []entity.Entry{
	{
		Rank:       1,
		UserID:     1,
		Username:   "top_student",
		TotalScore: 95.5,
		SkillScores: map[string]int{
			"listening": 92,
			"speaking":  98,
			"reading":   95,
			"writing":   97,
		},
		StreakDays: 30,
	},
	{
		Rank:       2,
		UserID:     2,
		Username:   "second_place",
		TotalScore: 94.0,
		SkillScores: map[string]int{
			"listening": 90,
			"speaking":  96,
			"reading":   94,
			"writing":   96,
		},
		StreakDays: 25,
	},
}

func (s *staticLeaderboard) Top(_ context.Context, _ string, limit int) ([]entity.Entry, error) {
	if limit > len(entries) {
		limit = len(entries)
	}
	out := make([]entity.Entry, limit)
	copy(out, entries[:limit])
	return out, nil
}

func (s *staticLeaderboard) UserRank(_ context.Context, userID uint) (*entity.UserRank, error) {
	return &entity.UserRank{
		UserID:     userID,
		Rank:       1,
		TotalScore: 95.5,
	}, nil
}
