package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz play requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// PlayQuiz godoc
// @Summary Get the next quiz question
// @Description Returns a random question from the category (or all categories when id is 0) that is not in previous_questions. When none is left the response has finished=true and question=null.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.PlayQuizRequest true "Quiz state"
// @Success 200 {object} dto.PlayQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *fiber.Ctx) error {
	var req dto.PlayQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse quiz request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidatePlayQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.NextQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
