package models

import (
	"time"

	"github.com/google/uuid"
)

// Application links a User to a Job. Both foreign keys cascade: deleting
// either parent removes the application rows. A (user, job) pair is not
// unique, resubmission is allowed.
type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	Status    string    `gorm:"not null;default:'submitted';size:50" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Job       Job       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
