package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingIDs  = errors.New("user_id and job_id are required")
	ErrUnknownUser = errors.New("referenced user does not exist")
	ErrUnknownJob  = errors.New("referenced job does not exist")
)

const DefaultApplicationStatus = "submitted"

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Create inserts an application after verifying both parents exist. The FK
// constraints remain the backstop for a delete racing the check.
func (s *ApplicationService) Create(req *dto.CreateApplicationRequest) (*models.Application, error) {
	if req.UserID == uuid.Nil || req.JobID == uuid.Nil {
		return nil, ErrMissingIDs
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", req.UserID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if count == 0 {
		return nil, ErrUnknownUser
	}

	if err := s.db.Model(&models.Job{}).Where("id = ?", req.JobID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check job: %w", err)
	}
	if count == 0 {
		return nil, ErrUnknownJob
	}

	status := req.Status
	if status == "" {
		status = DefaultApplicationStatus
	}

	application := models.Application{
		ID:     uuid.New(),
		UserID: req.UserID,
		JobID:  req.JobID,
		Status: status,
	}

	if err := s.db.Create(&application).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &application, nil
}

// List returns all applications, most recent first.
func (s *ApplicationService) List() ([]models.Application, error) {
	var applications []models.Application
	if err := s.db.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}
