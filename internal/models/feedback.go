package models

import "time"

const (
	ResultHelped   = "helped"
	ResultNoChange = "no_change"
	ResultWorse    = "worse"
)

func IsValidResult(value string) bool {
	switch value {
	case ResultHelped, ResultNoChange, ResultWorse:
		return true
	}
	return false
}

// Feedback is append-only: rows are created once per suggestion-response
// cycle and removed only by the owning entry's cascade delete.
type Feedback struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	EntryID        uint      `gorm:"not null;index" json:"entry_id"`
	InterventionID uint      `gorm:"not null;index" json:"intervention_id"`
	Result         string    `gorm:"not null" json:"result"`
	CreatedAt      time.Time `json:"created_at"`
}
