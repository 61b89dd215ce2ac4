package service

import (
	"context"
	"errors"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines the interface for question operations
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	// DeleteQuestion deletes by ID and returns the requested page as it looks afterwards
	DeleteQuestion(ctx context.Context, id string, page int) (*dto.DeleteQuestionResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.QuestionListResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID string, page int) (*dto.QuestionListResponse, error)
}

type questionService struct {
	repo       domain.QuestionRepository
	categories CategoryService
	pageSize   int
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(repo domain.QuestionRepository, categories CategoryService, pageSize int) QuestionService {
	return &questionService{repo: repo, categories: categories, pageSize: pageSize}
}

func (s *questionService) page(number int) (domain.Page, error) {
	if number < 1 {
		return domain.Page{}, domain.NewInvalidInputError("page must be 1 or greater").WithContext("page", number)
	}
	return domain.Page{Number: number, Size: s.pageSize}, nil
}

func (s *questionService) ListQuestions(ctx context.Context, pageNumber int) (*dto.QuestionListResponse, error) {
	page, err := s.page(pageNumber)
	if err != nil {
		return nil, err
	}

	var (
		questions  []*domain.Question
		total      int
		categories map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.repo.ListQuestions(gctx, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountQuestions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.CategoryMap(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("No questions found on this page").WithContext("page", pageNumber)
	}

	return &dto.QuestionListResponse{
		Success:        true,
		Questions:      toQuestionResponses(questions),
		TotalQuestions: total,
		Categories:     categories,
	}, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	question := domain.NewQuestion(req.Category.String(), req.Question, req.Answer, req.Difficulty)
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.categories.GetCategory(ctx, question.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ValidationErrors{domain.NewInvalidFormatError("category", question.CategoryID)}
		}
		return nil, err
	}

	if err := s.repo.SaveQuestion(ctx, question); err != nil {
		return nil, domain.NewInternalError("Failed to save question", err)
	}

	logger.Get().Info("Question created",
		zap.String("question_id", question.ID),
		zap.String("category_id", question.CategoryID))

	return &dto.CreateQuestionResponse{Success: true, Question: toQuestionResponse(question)}, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string, pageNumber int) (*dto.DeleteQuestionResponse, error) {
	page, err := s.page(pageNumber)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to delete question", err)
	}
	logger.Get().Info("Question deleted", zap.String("question_id", id))

	questions, err := s.repo.ListQuestions(ctx, page)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}
	total, err := s.repo.CountQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to count questions", err)
	}

	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      toQuestionResponses(questions),
		TotalQuestions: total,
	}, nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string, pageNumber int) (*dto.QuestionListResponse, error) {
	page, err := s.page(pageNumber)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.SearchQuestions(ctx, strings.TrimSpace(term), page)
	if err != nil {
		return nil, domain.NewInternalError("Failed to search questions", err)
	}
	if len(result.Questions) == 0 {
		return nil, domain.NewNotFoundError("No questions match the search term").WithContext("searchTerm", term)
	}

	return &dto.QuestionListResponse{
		Success:        true,
		Questions:      toQuestionResponses(result.Questions),
		TotalQuestions: result.Total,
	}, nil
}

func (s *questionService) GetQuestionsByCategory(ctx context.Context, categoryID string, pageNumber int) (*dto.QuestionListResponse, error) {
	page, err := s.page(pageNumber)
	if err != nil {
		return nil, err
	}

	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.ListQuestionsByCategory(ctx, categoryID, page)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list category questions", err)
	}
	if len(result.Questions) == 0 {
		return nil, domain.NewNotFoundError("No questions found in this category").
			WithContext("category_id", categoryID).
			WithContext("page", pageNumber)
	}

	current := category.Type
	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       toQuestionResponses(result.Questions),
		TotalQuestions:  result.Total,
		CurrentCategory: &current,
	}, nil
}

func toQuestionResponse(q *domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

func toQuestionResponses(questions []*domain.Question) []dto.QuestionResponse {
	result := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, toQuestionResponse(q))
	}
	return result
}
