package dto

import "github.com/google/uuid"

type CreateApplicationRequest struct {
	UserID uuid.UUID `json:"user_id"`
	JobID  uuid.UUID `json:"job_id"`
	Status string    `json:"status"`
}
