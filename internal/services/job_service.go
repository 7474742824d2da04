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
	ErrTitleRequired = errors.New("title is required")
	ErrJobNotFound   = errors.New("job not found")
)

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) Create(req *dto.CreateJobRequest) (*models.Job, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	job := models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
	}

	if err := s.db.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

// ToggleBookmark flips the flag in a single UPDATE so two concurrent toggles
// serialize on the row lock and both apply.
func (s *JobService) ToggleBookmark(id uuid.UUID) (*models.Job, error) {
	result := s.db.Model(&models.Job{}).
		Where("id = ?", id).
		Update("is_bookmarked", gorm.Expr("NOT is_bookmarked"))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to toggle bookmark: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}

	var job models.Job
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload job: %w", err)
	}
	return &job, nil
}

// List returns all jobs, most recent first.
func (s *JobService) List() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}
