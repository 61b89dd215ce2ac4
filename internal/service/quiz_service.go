package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz play
type QuizService interface {
	// NextQuestion returns a random question not in the request's previous
	// questions, or a finished response once the pool is exhausted.
	NextQuestion(ctx context.Context, req *dto.PlayQuizRequest) (*dto.PlayQuizResponse, error)
}

type quizService struct {
	questions  domain.QuestionRepository
	categories CategoryService
	selector   *domain.QuestionSelector
}

// NewQuizService creates a new QuizService
func NewQuizService(questions domain.QuestionRepository, categories CategoryService, selector *domain.QuestionSelector) QuizService {
	if selector == nil {
		selector = domain.NewQuestionSelector()
	}
	return &quizService{questions: questions, categories: categories, selector: selector}
}

func (s *quizService) NextQuestion(ctx context.Context, req *dto.PlayQuizRequest) (*dto.PlayQuizResponse, error) {
	pool, err := s.pool(ctx, req.QuizCategory.ID)
	if err != nil {
		return nil, err
	}

	previous := req.PreviousIDs()
	question, ok := s.selector.SelectNext(pool, previous)
	if !ok {
		logger.Get().Debug("Quiz finished",
			zap.String("category_id", req.QuizCategory.ID.String()),
			zap.Int("previous_count", len(previous)))
		return &dto.PlayQuizResponse{Success: true, Finished: true}, nil
	}

	resp := toQuestionResponse(question)
	return &dto.PlayQuizResponse{Success: true, Question: &resp}, nil
}

func (s *quizService) pool(ctx context.Context, categoryID dto.FlexibleID) ([]*domain.Question, error) {
	if categoryID.IsAny() {
		questions, err := s.questions.GetAllQuestions(ctx)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get questions", err)
		}
		return questions, nil
	}

	if _, err := s.categories.GetCategory(ctx, categoryID.String()); err != nil {
		return nil, err
	}
	questions, err := s.questions.GetQuestionsByCategory(ctx, categoryID.String())
	if err != nil {
		return nil, domain.NewInternalError("Failed to get category questions", err)
	}
	return questions, nil
}
