// Package entity defines the leaderboard domain model.
package entity

// Entry is one row of the leaderboard.
type Entry struct {
	Rank        int            `json:"rank"`
	UserID      uint           `json:"user_id"`
	Username    string         `json:"username"`
	TotalScore  float64        `json:"total_score"`
	SkillScores map[string]int `json:"skill_scores"`
	StreakDays  int            `json:"streak_days"`
	AvatarURL   *string        `json:"avatar_url"`
}

// UserRank is a single user's position on the leaderboard.
type UserRank struct {
	UserID     uint    `json:"user_id"`
	Rank       int     `json:"rank"`
	TotalScore float64 `json:"total_score"`
}
