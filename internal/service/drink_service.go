package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// DrinkService defines the interface for coffee shop menu operations
type DrinkService interface {
	GetDrinks(ctx context.Context) (*dto.DrinksShortResponse, error)
	GetDrinksDetail(ctx context.Context) (*dto.DrinksLongResponse, error)
	CreateDrink(ctx context.Context, req *dto.CreateDrinkRequest) (*dto.DrinksLongResponse, error)
	UpdateDrink(ctx context.Context, id string, req *dto.UpdateDrinkRequest) (*dto.DrinksLongResponse, error)
	DeleteDrink(ctx context.Context, id string) (*dto.DeleteDrinkResponse, error)
}

type drinkService struct {
	repo  domain.DrinkRepository
	cache domain.Cache
	ttl   time.Duration
}

// NewDrinkService creates a new DrinkService. cache may be nil.
func NewDrinkService(repo domain.DrinkRepository, cache domain.Cache, ttl time.Duration) DrinkService {
	return &drinkService{repo: repo, cache: cache, ttl: ttl}
}

func (s *drinkService) GetDrinks(ctx context.Context) (*dto.DrinksShortResponse, error) {
	var drinks []dto.DrinkShort
	if s.readCache(ctx, cache.DrinksShortKey, &drinks) {
		return &dto.DrinksShortResponse{Success: true, Drinks: drinks}, nil
	}

	all, err := s.allDrinks(ctx)
	if err != nil {
		return nil, err
	}
	drinks = make([]dto.DrinkShort, 0, len(all))
	for _, d := range all {
		drinks = append(drinks, toDrinkShort(d))
	}
	s.writeCache(ctx, cache.DrinksShortKey, drinks)
	return &dto.DrinksShortResponse{Success: true, Drinks: drinks}, nil
}

func (s *drinkService) GetDrinksDetail(ctx context.Context) (*dto.DrinksLongResponse, error) {
	var drinks []dto.DrinkLong
	if s.readCache(ctx, cache.DrinksDetailKey, &drinks) {
		return &dto.DrinksLongResponse{Success: true, Drinks: drinks}, nil
	}

	all, err := s.allDrinks(ctx)
	if err != nil {
		return nil, err
	}
	drinks = make([]dto.DrinkLong, 0, len(all))
	for _, d := range all {
		drinks = append(drinks, toDrinkLong(d))
	}
	s.writeCache(ctx, cache.DrinksDetailKey, drinks)
	return &dto.DrinksLongResponse{Success: true, Drinks: drinks}, nil
}

func (s *drinkService) allDrinks(ctx context.Context) ([]*domain.Drink, error) {
	all, err := s.repo.GetAllDrinks(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get drinks", err)
	}
	if len(all) == 0 {
		return nil, domain.NewNotFoundError("No drinks found")
	}
	return all, nil
}

func (s *drinkService) CreateDrink(ctx context.Context, req *dto.CreateDrinkRequest) (*dto.DrinksLongResponse, error) {
	drink := domain.NewDrink(req.Title, toDomainRecipe(req.Recipe))
	if err := drink.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureTitleFree(ctx, drink.Title, ""); err != nil {
		return nil, err
	}

	if err := s.repo.SaveDrink(ctx, drink); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, titleTaken(drink.Title)
		}
		return nil, domain.NewUnprocessableError("Failed to save drink", err)
	}
	s.invalidate(ctx)

	logger.Get().Info("Drink created", zap.String("drink_id", drink.ID), zap.String("title", drink.Title))
	return &dto.DrinksLongResponse{Success: true, Drinks: []dto.DrinkLong{toDrinkLong(drink)}}, nil
}

func (s *drinkService) UpdateDrink(ctx context.Context, id string, req *dto.UpdateDrinkRequest) (*dto.DrinksLongResponse, error) {
	drink, err := s.repo.GetDrinkByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get drink", err)
	}
	if drink == nil {
		return nil, domain.NewDrinkNotFoundError(id)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title != drink.Title {
			if err := s.ensureTitleFree(ctx, title, drink.ID); err != nil {
				return nil, err
			}
		}
		drink.Title = title
	}
	if req.Recipe != nil {
		drink.Recipe = toDomainRecipe(req.Recipe)
	}
	if err := drink.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDrink(ctx, drink); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewDrinkNotFoundError(id)
		}
		if errors.Is(err, domain.ErrConflict) {
			return nil, titleTaken(drink.Title)
		}
		return nil, domain.NewUnprocessableError("Failed to update drink", err)
	}
	s.invalidate(ctx)

	logger.Get().Info("Drink updated", zap.String("drink_id", drink.ID))
	return &dto.DrinksLongResponse{Success: true, Drinks: []dto.DrinkLong{toDrinkLong(drink)}}, nil
}

func (s *drinkService) DeleteDrink(ctx context.Context, id string) (*dto.DeleteDrinkResponse, error) {
	if err := s.repo.DeleteDrink(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewDrinkNotFoundError(id)
		}
		return nil, domain.NewUnprocessableError("Failed to delete drink", err)
	}
	s.invalidate(ctx)

	logger.Get().Info("Drink deleted", zap.String("drink_id", id))
	return &dto.DeleteDrinkResponse{Success: true, Delete: id}, nil
}

// ensureTitleFree returns a conflict when another drink (not exceptID) already uses title.
func (s *drinkService) ensureTitleFree(ctx context.Context, title, exceptID string) error {
	existing, err := s.repo.GetDrinkByTitle(ctx, title)
	if err != nil {
		return domain.NewInternalError("Failed to check drink title", err)
	}
	if existing != nil && existing.ID != exceptID {
		return titleTaken(title)
	}
	return nil
}

func titleTaken(title string) error {
	return domain.NewConflictError("A drink with this title already exists").WithContext("title", title)
}

func (s *drinkService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read drinks cache", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Get().Warn("Discarding malformed drinks cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *drinkService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warn("Failed to encode drinks cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		logger.Get().Warn("Failed to write drinks cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *drinkService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.DrinksShortKey, cache.DrinksDetailKey); err != nil {
		logger.Get().Warn("Failed to invalidate drinks cache", zap.Error(err))
	}
}

func toDomainRecipe(recipe dto.RecipeInput) []domain.Ingredient {
	result := make([]domain.Ingredient, 0, len(recipe))
	for _, ing := range recipe {
		result = append(result, domain.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts})
	}
	return result
}

func toDrinkShort(d *domain.Drink) dto.DrinkShort {
	recipe := make([]dto.IngredientShort, 0, len(d.Recipe))
	for _, ing := range d.Recipe {
		recipe = append(recipe, dto.IngredientShort{Color: ing.Color, Parts: ing.Parts})
	}
	return dto.DrinkShort{ID: d.ID, Title: d.Title, Recipe: recipe}
}

func toDrinkLong(d *domain.Drink) dto.DrinkLong {
	recipe := make([]dto.Ingredient, 0, len(d.Recipe))
	for _, ing := range d.Recipe {
		recipe = append(recipe, dto.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts})
	}
	return dto.DrinkLong{ID: d.ID, Title: d.Title, Recipe: recipe}
}
