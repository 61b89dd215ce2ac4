package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DrinkHandler handles coffee shop menu requests
type DrinkHandler struct {
	service   service.DrinkService
	validator *validation.Validator
}

// NewDrinkHandler creates a new DrinkHandler instance
func NewDrinkHandler(service service.DrinkService) *DrinkHandler {
	return &DrinkHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetDrinks godoc
// @Summary List drinks
// @Description Public menu, recipes without ingredient names
// @Tags drinks
// @Produce json
// @Success 200 {object} dto.DrinksShortResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /drinks [get]
func (h *DrinkHandler) GetDrinks(c *fiber.Ctx) error {
	resp, err := h.service.GetDrinks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetDrinksDetail godoc
// @Summary List drinks with full recipes
// @Tags drinks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.DrinksLongResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /drinks-detail [get]
func (h *DrinkHandler) GetDrinksDetail(c *fiber.Ctx) error {
	resp, err := h.service.GetDrinksDetail(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateDrink godoc
// @Summary Create a drink
// @Description recipe may be a single ingredient object or a list
// @Tags drinks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param drink body dto.CreateDrinkRequest true "Drink"
// @Success 200 {object} dto.DrinksLongResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /drinks [post]
func (h *DrinkHandler) CreateDrink(c *fiber.Ctx) error {
	var req dto.CreateDrinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateCreateDrinkRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateDrink(c.UserContext(), &req)
	if err != nil {
		return err
	}
	for _, d := range resp.Drinks {
		auditMenuChange(c, "create", d.ID)
	}
	return c.JSON(resp)
}

// UpdateDrink godoc
// @Summary Update a drink
// @Description Absent fields are left unchanged
// @Tags drinks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Drink ID"
// @Param drink body dto.UpdateDrinkRequest true "Changes"
// @Success 200 {object} dto.DrinksLongResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /drinks/{id} [patch]
func (h *DrinkHandler) UpdateDrink(c *fiber.Ctx) error {
	var req dto.UpdateDrinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateUpdateDrinkRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateDrink(c.UserContext(), middleware.IDFrom(c), &req)
	if err != nil {
		return err
	}
	auditMenuChange(c, "update", middleware.IDFrom(c))
	return c.JSON(resp)
}

// DeleteDrink godoc
// @Summary Delete a drink
// @Tags drinks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Drink ID"
// @Success 200 {object} dto.DeleteDrinkResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /drinks/{id} [delete]
func (h *DrinkHandler) DeleteDrink(c *fiber.Ctx) error {
	resp, err := h.service.DeleteDrink(c.UserContext(), middleware.IDFrom(c))
	if err != nil {
		return err
	}
	auditMenuChange(c, "delete", middleware.IDFrom(c))
	return c.JSON(resp)
}

// auditMenuChange records which token subject changed the menu.
func auditMenuChange(c *fiber.Ctx, action, drinkID string) {
	subject := ""
	if claims := middleware.ClaimsFrom(c); claims != nil {
		subject = claims.Subject
	}
	logger.Get().Info("Drink menu changed",
		zap.String("action", action),
		zap.String("drink_id", drinkID),
		zap.String("subject", subject),
	)
}
