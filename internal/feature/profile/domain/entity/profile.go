// Package entity defines the profile domain model.
package entity

// LearningStats summarizes a user's practice history.
type LearningStats struct {
	TotalPracticeTime  int                `json:"total_practice_time"` // minutes
	ExercisesCompleted int                `json:"exercises_completed"`
	CurrentStreak      int                `json:"current_streak"` // days
	LongestStreak      int                `json:"longest_streak"` // days
	SkillProgress      map[string]float64 `json:"skill_progress"`
	BadgesEarned       []string           `json:"badges_earned"`
}

// Profile is a user's public profile with learning stats attached.
type Profile struct {
	UserID        uint           `json:"user_id"`
	Email         string         `json:"email"`
	FullName      string         `json:"full_name"`
	Username      string         `json:"username,omitempty"`
	Bio           *string        `json:"bio"`
	AvatarURL     *string        `json:"avatar_url"`
	LearningStats LearningStats  `json:"learning_stats"`
	Preferences   map[string]any `json:"preferences"`
}
