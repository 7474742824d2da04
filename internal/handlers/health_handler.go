package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobportal/jobportal-backend/internal/database"
	"github.com/jobportal/jobportal-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}

func (h *HealthHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "pong"})
}

func (h *HealthHandler) Home(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "Job Portal API is running"})
}
