// Package dto defines the request/response bodies for the practice API.
package dto

import "tuneeng_backend/internal/feature/practice/domain/entity"

// ExerciseRes mirrors one catalog exercise.
type ExerciseRes struct {
	ID            int              `json:"id"`
	Title         string           `json:"title"`
	SkillType     entity.SkillType `json:"skill_type"`
	Description   string           `json:"description,omitempty"`
	Difficulty    string           `json:"difficulty,omitempty"`
	EstimatedTime int              `json:"estimated_time,omitempty"`
}

func NewExerciseRes(e entity.Exercise) ExerciseRes {
	return ExerciseRes{
		ID:            e.ID,
		Title:         e.Title,
		SkillType:     e.SkillType,
		Description:   e.Description,
		Difficulty:    e.Difficulty,
		EstimatedTime: e.EstimatedTime,
	}
}

// SessionReq starts a new practice session.
type SessionReq struct {
	SkillType  entity.SkillType `json:"skill_type" binding:"required"`
	ExerciseID int              `json:"exercise_id"`
}

// SessionRes describes a practice session.
type SessionRes struct {
	SessionID string      `json:"session_id"`
	Status    string      `json:"status,omitempty"`
	Exercise  ExerciseRes `json:"exercise"`
	StartedAt string      `json:"started_at,omitempty"`
}

func NewSessionRes(s *entity.Session) SessionRes {
	return SessionRes{
		SessionID: s.ID,
		Status:    s.Status,
		Exercise:  NewExerciseRes(s.Exercise),
		StartedAt: s.StartedAt,
	}
}

// FeedbackReq submits a practice recording or text for evaluation.
type FeedbackReq struct {
	SessionID    string `json:"session_id" binding:"required"`
	AudioURL     string `json:"audio_url"`
	TextResponse string `json:"text_response"`
	VideoURL     string `json:"video_url"`
}

// FeedbackRes carries the scored evaluation.
type FeedbackRes struct {
	FeedbackID         string            `json:"feedback_id"`
	FluencyScore       float64           `json:"fluency_score"`
	PronunciationScore float64           `json:"pronunciation_score"`
	ClarityScore       float64           `json:"clarity_score"`
	Suggestions        []string          `json:"suggestions"`
	DetailedAnalysis   map[string]string `json:"detailed_analysis"`
}

func NewFeedbackRes(f *entity.Feedback) FeedbackRes {
	return FeedbackRes{
		FeedbackID:         f.ID,
		FluencyScore:       f.FluencyScore,
		PronunciationScore: f.PronunciationScore,
		ClarityScore:       f.ClarityScore,
		Suggestions:        f.Suggestions,
		DetailedAnalysis:   f.DetailedAnalysis,
	}
}
