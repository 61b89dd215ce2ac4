package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ArtistHandler handles artist listing requests
type ArtistHandler struct {
	service   service.ArtistService
	validator *validation.Validator
}

// NewArtistHandler creates a new ArtistHandler instance
func NewArtistHandler(service service.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListArtists godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Success 200 {object} dto.ArtistsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /artists [get]
func (h *ArtistHandler) ListArtists(c *fiber.Ctx) error {
	resp, err := h.service.ListArtists(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchArtists godoc
// @Summary Search artists
// @Description Case-insensitive substring match on the artist name
// @Tags artists
// @Accept json
// @Produce json
// @Param search body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /artists/search [post]
func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateNameSearch(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SearchArtists(c.UserContext(), req.SearchTerm)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetArtist godoc
// @Summary Get an artist
// @Description Artist details with past and upcoming shows
// @Tags artists
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} dto.ArtistResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /artists/{id} [get]
func (h *ArtistHandler) GetArtist(c *fiber.Ctx) error {
	resp, err := h.service.GetArtist(c.UserContext(), middleware.IDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateArtist godoc
// @Summary Create an artist
// @Tags artists
// @Accept json
// @Produce json
// @Param artist body dto.ArtistRequest true "Artist"
// @Success 201 {object} dto.ArtistResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /artists [post]
func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	var req dto.ArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateArtistRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateArtist(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateArtist godoc
// @Summary Edit an artist
// @Description Replaces every editable field
// @Tags artists
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Param artist body dto.ArtistRequest true "Artist"
// @Success 200 {object} dto.ArtistResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /artists/{id} [put]
func (h *ArtistHandler) UpdateArtist(c *fiber.Ctx) error {
	var req dto.ArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateArtistRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateArtist(c.UserContext(), middleware.IDFrom(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Tags artists
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	resp, err := h.service.DeleteArtist(c.UserContext(), middleware.IDFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
