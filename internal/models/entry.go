package models

import "time"

const (
	EmotionJoy      = "joy"
	EmotionSadness  = "sadness"
	EmotionAnxiety  = "anxiety"
	EmotionAnger    = "anger"
	EmotionFear     = "fear"
	EmotionDisgust  = "disgust"
	EmotionSurprise = "surprise"
	EmotionNeutral  = "neutral"
	EmotionExcited  = "excited"
	EmotionCalm     = "calm"
)

const (
	IntensityMin  = 1
	IntensityMax  = 10
	NoteMaxLength = 500
)

// Emotions lists every accepted emotion value in display order.
var Emotions = []string{
	EmotionJoy,
	EmotionSadness,
	EmotionAnxiety,
	EmotionAnger,
	EmotionFear,
	EmotionDisgust,
	EmotionSurprise,
	EmotionNeutral,
	EmotionExcited,
	EmotionCalm,
}

func IsValidEmotion(value string) bool {
	for _, emotion := range Emotions {
		if value == emotion {
			return true
		}
	}
	return false
}

type Entry struct {
	ID                      uint          `gorm:"primaryKey" json:"id"`
	UserID                  *uint         `gorm:"index" json:"user_id,omitempty"`
	Emotion                 string        `gorm:"not null" json:"emotion"`
	Intensity               int           `gorm:"not null" json:"intensity"`
	Note                    string        `json:"note"`
	Timestamp               time.Time     `gorm:"not null;index" json:"timestamp"`
	SuggestedInterventionID *uint         `json:"suggested_intervention_id,omitempty"`
	SuggestedIntervention   *Intervention `gorm:"constraint:OnDelete:SET NULL" json:"suggested_intervention,omitempty"`
	Tags                    []Tag         `gorm:"many2many:entry_tags" json:"tags"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}
