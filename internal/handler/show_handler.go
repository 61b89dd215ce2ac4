package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ShowHandler handles show booking requests
type ShowHandler struct {
	service   service.ShowService
	validator *validation.Validator
}

// NewShowHandler creates a new ShowHandler instance
func NewShowHandler(service service.ShowService) *ShowHandler {
	return &ShowHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListShows godoc
// @Summary List shows
// @Tags shows
// @Produce json
// @Success 200 {object} dto.ShowsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shows [get]
func (h *ShowHandler) ListShows(c *fiber.Ctx) error {
	resp, err := h.service.ListShows(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateShow godoc
// @Summary Create a show
// @Description The artist and venue must already exist
// @Tags shows
// @Accept json
// @Produce json
// @Param show body dto.CreateShowRequest true "Show"
// @Success 201 {object} dto.CreateShowResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /shows [post]
func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	var req dto.CreateShowRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateCreateShowRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateShow(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
