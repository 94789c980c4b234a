// Package usecase serves the practice catalog. The exercise set, session
// lifecycle and feedback scores are fixed placeholder data until real
// content authoring lands.
package usecase

import (
	"context"
	"errors"

	"tuneeng_backend/internal/feature/practice/domain/entity"
)

// ErrUnknownSkillType is returned when a filter names a skill outside the
// listening/speaking/reading/writing set.
var ErrUnknownSkillType = errors.New("unknown skill type")

// PracticeUsecase exposes the practice exercise catalog and sessions.
type PracticeUsecase interface {
	Exercises(ctx context.Context, skill entity.SkillType) ([]entity.Exercise, error)
	StartSession(ctx context.Context, skill entity.SkillType, exerciseID int) (*entity.Session, error)
	Feedback(ctx context.Context, sessionID string) (*entity.Feedback, error)
	Session(ctx context.Context, sessionID string) (*entity.Session, error)
}

type practiceUsecase struct{}

func NewPracticeUsecase() PracticeUsecase {
	return &practiceUsecase{}
}

var catalog = []entity.Exercise{
	{
		ID:            1,
		Title:         "Listening Comprehension - Corporate Meeting",
		SkillType:     entity.SkillListening,
		Description:   "Listen to a corporate meeting audio and answer questions.",
		Difficulty:    "intermediate",
		EstimatedTime: 15,
	},
	{
		ID:            2,
		Title:         "Speaking Practice - Elevator Pitch",
		SkillType:     entity.SkillSpeaking,
		Description:   "Record a 60-second elevator pitch about yourself.",
		Difficulty:    "beginner",
		EstimatedTime: 10,
	},
}

// Exercises returns the exercise catalog, filtered by skill when one is
// given. An empty skill returns everything.
func (u *practiceUsecase) Exercises(_ context.Context, skill entity.SkillType) ([]entity.Exercise, error) {
	if skill == "" {
		out := make([]entity.Exercise, len(catalog))
		copy(out, catalog)
		return out, nil
	}
	if !skill.Valid() {
		return nil, ErrUnknownSkillType
	}

	out := make([]entity.Exercise, 0, len(catalog))
	for _, e := range catalog {
		if e.SkillType == skill {
			out = append(out, e)
		}
	}
	return out, nil
}

func (u *practiceUsecase) StartSession(_ context.Context, skill entity.SkillType, _ int) (*entity.Session, error) {
	if !skill.Valid() {
		return nil, ErrUnknownSkillType
	}
	return &entity.Session{
		ID: "session_123",
		Exercise: entity.Exercise{
			ID:            1,
			Title:         "Test Exercise",
			SkillType:     skill,
			Description:   "Test description",
			Difficulty:    "intermediate",
			EstimatedTime: 15,
		},
		StartedAt: "2024-01-01T00:00:00Z",
	}, nil
}

func (u *practiceUsecase) Feedback(_ context.Context, _ string) (*entity.Feedback, error) {
	return &entity.Feedback{
		ID:                 "feedback_123",
		FluencyScore:       8.5,
		PronunciationScore: 7.8,
		ClarityScore:       9.0,
		Suggestions: []string{
			"Work on reducing filler words",
			"Improve intonation in questions",
			"Practice pausing for emphasis",
		},
		DetailedAnalysis: map[string]string{
			"tone":       "professional",
			"pace":       "moderate",
			"vocabulary": "advanced",
		},
	}, nil
}

func (u *practiceUsecase) Session(_ context.Context, sessionID string) (*entity.Session, error) {
	return &entity.Session{
		ID:     sessionID,
		Status: "completed",
		Exercise: entity.Exercise{
			ID:        1,
			Title:     "Test Exercise",
			SkillType: entity.SkillSpeaking,
		},
	}, nil
}
