package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	applications, err := h.applicationService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "internal server error",
		})
	}
	return c.JSON(applications)
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	application, err := h.applicationService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingIDs),
			errors.Is(err, services.ErrUnknownUser),
			errors.Is(err, services.ErrUnknownJob):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: "internal server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}
