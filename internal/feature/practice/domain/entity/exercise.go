// Package entity defines the practice domain model.
package entity

// SkillType is one of the four communication skills tracked by the platform.
type SkillType string

const (
	SkillListening SkillType = "listening"
	SkillSpeaking  SkillType = "speaking"
	SkillReading   SkillType = "reading"
	SkillWriting   SkillType = "writing"
)

// Valid reports whether s is a recognized skill type.
func (s SkillType) Valid() bool {
	switch s {
	case SkillListening, SkillSpeaking, SkillReading, SkillWriting:
		return true
	}
	return false
}

// Exercise is a single practice exercise.
type Exercise struct {
	ID            int
	Title         string
	SkillType     SkillType
	Description   string
	Difficulty    string
	EstimatedTime int // minutes
}

// Session is an in-progress or completed practice session.
type Session struct {
	ID        string
	Status    string
	Exercise  Exercise
	StartedAt string
}

// Feedback is the scored evaluation of a practice submission.
type Feedback struct {
	ID                 string
	FluencyScore       float64
	PronunciationScore float64
	ClarityScore       float64
	Suggestions        []string
	DetailedAnalysis   map[string]string
}
