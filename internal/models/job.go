package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting. isBookmarked keeps the camelCase name the API clients
// already depend on.
type Job struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"not null;size:255" json:"title"`
	Company      string    `gorm:"size:255" json:"company,omitempty"`
	Location     string    `gorm:"size:255" json:"location,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	IsBookmarked bool      `gorm:"not null;default:false" json:"isBookmarked"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
