// Package usecase serves progress history and summaries. Data is fixed
// placeholder content until practice sessions persist real activity.
package usecase

import (
	"context"
	"errors"

	"tuneeng_backend/internal/feature/tracker/domain/entity"
)

// DefaultDays is the progress window used when the caller does not ask for
// a specific one.
const DefaultDays = 30

const maxDays = 365

// ErrInvalidDayRange is returned when the requested window falls outside
// [1, 365].
var ErrInvalidDayRange = errors.New("days must be between 1 and 365")

// TrackerUsecase exposes progress history and summary queries.
type TrackerUsecase interface {
	Progress(ctx context.Context, userID uint, skillType string, days int) ([]entity.ProgressEntry, error)
	Summary(ctx context.Context, userID uint) (*entity.ProgressSummary, error)
}

type trackerUsecase struct{}

func NewTrackerUsecase() TrackerUsecase {
	return &trackerUsecase{}
}

var history = []entity.ProgressEntry{
	{
		Date:               "2024-01-01",
		SkillType:          "speaking",
		Score:              85.5,
		ExercisesCompleted: 3,
		TimeSpent:          45,
	},
	{
		Date:               "2024-01-02",
		SkillType:          "listening",
		Score:              90.0,
		ExercisesCompleted: 2,
		TimeSpent:          30,
	},
}

// Progress returns the activity history for the given window. Days outside
// [1, 365] are rejected.
func (u *trackerUsecase) Progress(_ context.Context, _ uint, skillType string, days int) ([]entity.ProgressEntry, error) {
	if days < 1 || days > maxDays {
		return nil, ErrInvalidDayRange
	}

	out := make([]entity.ProgressEntry, 0, len(history))
	for _, e := range history {
		if skillType != "" && e.SkillType != skillType {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (u *trackerUsecase) Summary(_ context.Context, _ uint) (*entity.ProgressSummary, error) {
	return &entity.ProgressSummary{
		TotalExercises:  45,
		TotalTime:       1200,
		AverageScore:    86.1,
		ImprovementRate: 12.5,
		SkillBreakdown: map[string]entity.SkillBreakdown{
			"listening": {AverageScore: 85.5, Exercises: 12, TimeSpent: 300},
			"speaking":  {AverageScore: 78.2, Exercises: 15, TimeSpent: 450},
			"reading":   {AverageScore: 92.0, Exercises: 10, TimeSpent: 250},
			"writing":   {AverageScore: 88.7, Exercises: 8, TimeSpent: 200},
		},
	}, nil
}
