package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
	validator  *validation.Validator
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories service.CategoryService, questions service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		questions:  questions,
		validator:  validation.NewValidator(),
	}
}

// GetCategories godoc
// @Summary Get all categories
// @Description Returns every category as an id to type map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.categories.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CreateCategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateCreateCategoryRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.categories.CreateCategory(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetCategoryQuestions godoc
// @Summary Get questions of a category
// @Description Returns one page of the category's questions
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) GetCategoryQuestions(c *fiber.Ctx) error {
	resp, err := h.questions.GetQuestionsByCategory(c.UserContext(), middleware.IDFrom(c), middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
