package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The bcrypt hash never leaves the model's
// JSON projection.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"not null;size:100;uniqueIndex" json:"username"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
