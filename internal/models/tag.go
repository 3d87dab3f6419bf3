package models

import "time"

// Tag is a shared free-text label. Names are unique and stored exactly as
// first submitted; tags are never deleted once created.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
