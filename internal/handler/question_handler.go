package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page of questions with the category map
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.CreateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateCreateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Deletes the question and returns the requested page afterwards
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	resp, err := h.service.DeleteQuestion(c.UserContext(), middleware.IDFrom(c), middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchQuestionsRequest true "Search term"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateSearchRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), req.SearchTerm, middleware.PageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
