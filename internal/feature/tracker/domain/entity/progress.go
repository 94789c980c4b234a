// Package entity defines the progress tracker domain model.
package entity

// ProgressEntry is one day of practice activity for a skill.
type ProgressEntry struct {
	Date               string  `json:"date"`
	SkillType          string  `json:"skill_type"`
	Score              float64 `json:"score"`
	ExercisesCompleted int     `json:"exercises_completed"`
	TimeSpent          int     `json:"time_spent"` // minutes
}

// SkillBreakdown aggregates one skill's activity.
type SkillBreakdown struct {
	AverageScore float64 `json:"average_score"`
	Exercises    int     `json:"exercises"`
	TimeSpent    int     `json:"time_spent"` // minutes
}

// ProgressSummary is the all-time rollup across skills.
type ProgressSummary struct {
	TotalExercises  int                       `json:"total_exercises"`
	TotalTime       int                       `json:"total_time"` // minutes
	AverageScore    float64                   `json:"average_score"`
	ImprovementRate float64                   `json:"improvement_rate"` // percentage
	SkillBreakdown  map[string]SkillBreakdown `json:"skill_breakdown"`
}
