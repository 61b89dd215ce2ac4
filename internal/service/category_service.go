package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// CategoryService defines the interface for category operations
type CategoryService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	// CategoryMap returns category ID -> type. An empty map is not an error.
	CategoryMap(ctx context.Context) (map[string]string, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error)
}

type categoryService struct {
	repo  domain.CategoryRepository
	cache domain.Cache
	ttl   time.Duration
}

// NewCategoryService creates a new CategoryService. cache may be nil.
func NewCategoryService(repo domain.CategoryRepository, cache domain.Cache, ttl time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: cache, ttl: ttl}
}

func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.CategoryMap(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("No categories found")
	}
	return &dto.CategoriesResponse{Success: true, Categories: categories}, nil
}

func (s *categoryService) CategoryMap(ctx context.Context) (map[string]string, error) {
	if cached, ok := s.cachedMap(ctx); ok {
		return cached, nil
	}

	categories, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}

	result := make(map[string]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}

	if len(result) > 0 {
		s.storeMap(ctx, result)
	}
	return result, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(id)
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	category := domain.NewCategory(req.Type)
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewConflictError("A category with this type already exists").WithContext("type", category.Type)
		}
		return nil, domain.NewInternalError("Failed to save category", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.CategoryMapKey); err != nil {
			logger.Get().Warn("Failed to invalidate category cache", zap.Error(err))
		}
	}

	return &dto.CreateCategoryResponse{
		Success:  true,
		Category: dto.CategoryResponse{ID: category.ID, Type: category.Type},
	}, nil
}

func (s *categoryService) cachedMap(ctx context.Context) (map[string]string, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, cache.CategoryMapKey)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read category cache", zap.Error(err))
		}
		return nil, false
	}

	var categories map[string]string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		logger.Get().Warn("Discarding malformed category cache entry", zap.Error(err))
		return nil, false
	}
	return categories, true
}

func (s *categoryService) storeMap(ctx context.Context, categories map[string]string) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		logger.Get().Warn("Failed to encode category cache entry", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, cache.CategoryMapKey, string(raw), s.ttl); err != nil {
		logger.Get().Warn("Failed to write category cache", zap.Error(err))
	}
}
