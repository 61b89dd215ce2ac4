package service

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ListQuestions(ctx context.Context, page domain.Page) ([]*domain.Question, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockQuestionRepository) ListQuestionsByCategory(ctx context.Context, categoryID string, page domain.Page) (*domain.QuestionPage, error) {
	args := m.Called(ctx, categoryID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestionPage), args.Error(1)
}

func (m *MockQuestionRepository) SearchQuestions(ctx context.Context, term string, page domain.Page) (*domain.QuestionPage, error) {
	args := m.Called(ctx, term, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestionPage), args.Error(1)
}

func (m *MockQuestionRepository) GetAllQuestions(ctx context.Context) ([]*domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestionsByCategory(ctx context.Context, categoryID string) ([]*domain.Question, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteQuestion(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockDrinkRepository ---
type MockDrinkRepository struct {
	mock.Mock
}

func (m *MockDrinkRepository) GetAllDrinks(ctx context.Context) ([]*domain.Drink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Drink), args.Error(1)
}

func (m *MockDrinkRepository) GetDrinkByID(ctx context.Context, id string) (*domain.Drink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drink), args.Error(1)
}

func (m *MockDrinkRepository) GetDrinkByTitle(ctx context.Context, title string) (*domain.Drink, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drink), args.Error(1)
}

func (m *MockDrinkRepository) SaveDrink(ctx context.Context, drink *domain.Drink) error {
	args := m.Called(ctx, drink)
	return args.Error(0)
}

func (m *MockDrinkRepository) UpdateDrink(ctx context.Context, drink *domain.Drink) error {
	args := m.Called(ctx, drink)
	return args.Error(0)
}

func (m *MockDrinkRepository) DeleteDrink(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockVenueRepository ---
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetAllVenues(ctx context.Context) ([]*domain.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetVenueByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) SearchVenues(ctx context.Context, term string) ([]*domain.Venue, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) SaveVenue(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) DeleteVenue(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockArtistRepository ---
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) GetAllArtists(ctx context.Context) ([]*domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetArtistByID(ctx context.Context, id string) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) SearchArtists(ctx context.Context, term string) ([]*domain.Artist, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) SaveArtist(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) UpdateArtist(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) DeleteArtist(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockShowRepository ---
type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) listings(args mock.Arguments) ([]domain.ShowListing, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowListing), args.Error(1)
}

func (m *MockShowRepository) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	return m.listings(m.Called(ctx))
}

func (m *MockShowRepository) ListShowsByVenue(ctx context.Context, venueID string) ([]domain.ShowListing, error) {
	return m.listings(m.Called(ctx, venueID))
}

func (m *MockShowRepository) ListShowsByArtist(ctx context.Context, artistID string) ([]domain.ShowListing, error) {
	return m.listings(m.Called(ctx, artistID))
}

func (m *MockShowRepository) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[string]int, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockShowRepository) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[string]int, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockShowRepository) SaveShow(ctx context.Context, show *domain.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockCategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoriesResponse), args.Error(1)
}

func (m *MockCategoryService) CategoryMap(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateCategoryResponse), args.Error(1)
}
