package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// VenueHandler handles venue listing requests
type VenueHandler struct {
	service   service.VenueService
	validator *validation.Validator
}

// NewVenueHandler creates a new VenueHandler instance
func NewVenueHandler(service service.VenueService) *VenueHandler {
	return &VenueHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListVenues godoc
// @Summary List venues
// @Description Venues grouped by city and state with their upcoming show counts
// @Tags venues
// @Produce json
// @Success 200 {object} dto.VenueAreasResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *fiber.Ctx) error {
	resp, err := h.service.ListVenues(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchVenues godoc
// @Summary Search venues
// @Description Case-insensitive substring match on the venue name
// @Tags venues
// @Accept json
// @Produce json
// @Param search body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /venues/search [post]
func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateNameSearch(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SearchVenues(c.UserContext(), req.SearchTerm)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetVenue godoc
// @Summary Get a venue
// @Description Venue details with past and upcoming shows
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} dto.VenueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *fiber.Ctx) error {
	resp, err := h.service.GetVenue(c.UserContext(), middleware.IDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body dto.VenueRequest true "Venue"
// @Success 201 {object} dto.VenueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	var req dto.VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateVenueRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateVenue(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateVenue godoc
// @Summary Edit a venue
// @Description Replaces every editable field
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param venue body dto.VenueRequest true "Venue"
// @Success 200 {object} dto.VenueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /venues/{id} [put]
func (h *VenueHandler) UpdateVenue(c *fiber.Ctx) error {
	var req dto.VenueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateVenueRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateVenue(c.UserContext(), middleware.IDFrom(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Description Also removes the venue's shows
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	resp, err := h.service.DeleteVenue(c.UserContext(), middleware.IDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
