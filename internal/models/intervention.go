package models

import "time"

// DefaultSubmitter is recorded when a community submission carries no name.
const DefaultSubmitter = "Community"

type Intervention struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	SubmittedBy string    `gorm:"not null;default:Community" json:"submitted_by"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
