package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockCategoryService
type MockCategoryService struct {
	GetCategoriesFunc  func(ctx context.Context) (*dto.CategoriesResponse, error)
	CategoryMapFunc    func(ctx context.Context) (map[string]string, error)
	GetCategoryFunc    func(ctx context.Context, id string) (*domain.Category, error)
	CreateCategoryFunc func(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error)
}

func (m *MockCategoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	panic("MockCategoryService.GetCategoriesFunc not implemented")
}
func (m *MockCategoryService) CategoryMap(ctx context.Context) (map[string]string, error) {
	if m.CategoryMapFunc != nil {
		return m.CategoryMapFunc(ctx)
	}
	panic("MockCategoryService.CategoryMapFunc not implemented")
}
func (m *MockCategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetCategoryFunc != nil {
		return m.GetCategoryFunc(ctx, id)
	}
	panic("MockCategoryService.GetCategoryFunc not implemented")
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, req)
	}
	panic("MockCategoryService.CreateCategoryFunc not implemented")
}

// MockQuestionService
type MockQuestionService struct {
	ListQuestionsFunc          func(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	CreateQuestionFunc         func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestionFunc         func(ctx context.Context, id string, page int) (*dto.DeleteQuestionResponse, error)
	SearchQuestionsFunc        func(ctx context.Context, term string, page int) (*dto.QuestionListResponse, error)
	GetQuestionsByCategoryFunc func(ctx context.Context, categoryID string, page int) (*dto.QuestionListResponse, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}
func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}
func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id string, page int) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id, page)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}
func (m *MockQuestionService) SearchQuestions(ctx context.Context, term string, page int) (*dto.QuestionListResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, term, page)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}
func (m *MockQuestionService) GetQuestionsByCategory(ctx context.Context, categoryID string, page int) (*dto.QuestionListResponse, error) {
	if m.GetQuestionsByCategoryFunc != nil {
		return m.GetQuestionsByCategoryFunc(ctx, categoryID, page)
	}
	panic("MockQuestionService.GetQuestionsByCategoryFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	NextQuestionFunc func(ctx context.Context, req *dto.PlayQuizRequest) (*dto.PlayQuizResponse, error)
}

func (m *MockQuizService) NextQuestion(ctx context.Context, req *dto.PlayQuizRequest) (*dto.PlayQuizResponse, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, req)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}

// MockDrinkService
type MockDrinkService struct {
	GetDrinksFunc       func(ctx context.Context) (*dto.DrinksShortResponse, error)
	GetDrinksDetailFunc func(ctx context.Context) (*dto.DrinksLongResponse, error)
	CreateDrinkFunc     func(ctx context.Context, req *dto.CreateDrinkRequest) (*dto.DrinksLongResponse, error)
	UpdateDrinkFunc     func(ctx context.Context, id string, req *dto.UpdateDrinkRequest) (*dto.DrinksLongResponse, error)
	DeleteDrinkFunc     func(ctx context.Context, id string) (*dto.DeleteDrinkResponse, error)
}

func (m *MockDrinkService) GetDrinks(ctx context.Context) (*dto.DrinksShortResponse, error) {
	if m.GetDrinksFunc != nil {
		return m.GetDrinksFunc(ctx)
	}
	panic("MockDrinkService.GetDrinksFunc not implemented")
}
func (m *MockDrinkService) GetDrinksDetail(ctx context.Context) (*dto.DrinksLongResponse, error) {
	if m.GetDrinksDetailFunc != nil {
		return m.GetDrinksDetailFunc(ctx)
	}
	panic("MockDrinkService.GetDrinksDetailFunc not implemented")
}
func (m *MockDrinkService) CreateDrink(ctx context.Context, req *dto.CreateDrinkRequest) (*dto.DrinksLongResponse, error) {
	if m.CreateDrinkFunc != nil {
		return m.CreateDrinkFunc(ctx, req)
	}
	panic("MockDrinkService.CreateDrinkFunc not implemented")
}
func (m *MockDrinkService) UpdateDrink(ctx context.Context, id string, req *dto.UpdateDrinkRequest) (*dto.DrinksLongResponse, error) {
	if m.UpdateDrinkFunc != nil {
		return m.UpdateDrinkFunc(ctx, id, req)
	}
	panic("MockDrinkService.UpdateDrinkFunc not implemented")
}
func (m *MockDrinkService) DeleteDrink(ctx context.Context, id string) (*dto.DeleteDrinkResponse, error) {
	if m.DeleteDrinkFunc != nil {
		return m.DeleteDrinkFunc(ctx, id)
	}
	panic("MockDrinkService.DeleteDrinkFunc not implemented")
}

// MockVenueService
type MockVenueService struct {
	ListVenuesFunc   func(ctx context.Context) (*dto.VenueAreasResponse, error)
	SearchVenuesFunc func(ctx context.Context, term string) (*dto.SearchResponse, error)
	GetVenueFunc     func(ctx context.Context, id string) (*dto.VenueResponse, error)
	CreateVenueFunc  func(ctx context.Context, req *dto.VenueRequest) (*dto.VenueResponse, error)
	UpdateVenueFunc  func(ctx context.Context, id string, req *dto.VenueRequest) (*dto.VenueResponse, error)
	DeleteVenueFunc  func(ctx context.Context, id string) (*dto.DeleteResponse, error)
}

func (m *MockVenueService) ListVenues(ctx context.Context) (*dto.VenueAreasResponse, error) {
	if m.ListVenuesFunc != nil {
		return m.ListVenuesFunc(ctx)
	}
	panic("MockVenueService.ListVenuesFunc not implemented")
}
func (m *MockVenueService) SearchVenues(ctx context.Context, term string) (*dto.SearchResponse, error) {
	if m.SearchVenuesFunc != nil {
		return m.SearchVenuesFunc(ctx, term)
	}
	panic("MockVenueService.SearchVenuesFunc not implemented")
}
func (m *MockVenueService) GetVenue(ctx context.Context, id string) (*dto.VenueResponse, error) {
	if m.GetVenueFunc != nil {
		return m.GetVenueFunc(ctx, id)
	}
	panic("MockVenueService.GetVenueFunc not implemented")
}
func (m *MockVenueService) CreateVenue(ctx context.Context, req *dto.VenueRequest) (*dto.VenueResponse, error) {
	if m.CreateVenueFunc != nil {
		return m.CreateVenueFunc(ctx, req)
	}
	panic("MockVenueService.CreateVenueFunc not implemented")
}
func (m *MockVenueService) UpdateVenue(ctx context.Context, id string, req *dto.VenueRequest) (*dto.VenueResponse, error) {
	if m.UpdateVenueFunc != nil {
		return m.UpdateVenueFunc(ctx, id, req)
	}
	panic("MockVenueService.UpdateVenueFunc not implemented")
}
func (m *MockVenueService) DeleteVenue(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	if m.DeleteVenueFunc != nil {
		return m.DeleteVenueFunc(ctx, id)
	}
	panic("MockVenueService.DeleteVenueFunc not implemented")
}

// MockArtistService
type MockArtistService struct {
	ListArtistsFunc   func(ctx context.Context) (*dto.ArtistsResponse, error)
	SearchArtistsFunc func(ctx context.Context, term string) (*dto.SearchResponse, error)
	GetArtistFunc     func(ctx context.Context, id string) (*dto.ArtistResponse, error)
	CreateArtistFunc  func(ctx context.Context, req *dto.ArtistRequest) (*dto.ArtistResponse, error)
	UpdateArtistFunc  func(ctx context.Context, id string, req *dto.ArtistRequest) (*dto.ArtistResponse, error)
	DeleteArtistFunc  func(ctx context.Context, id string) (*dto.DeleteResponse, error)
}

func (m *MockArtistService) ListArtists(ctx context.Context) (*dto.ArtistsResponse, error) {
	if m.ListArtistsFunc != nil {
		return m.ListArtistsFunc(ctx)
	}
	panic("MockArtistService.ListArtistsFunc not implemented")
}
func (m *MockArtistService) SearchArtists(ctx context.Context, term string) (*dto.SearchResponse, error) {
	if m.SearchArtistsFunc != nil {
		return m.SearchArtistsFunc(ctx, term)
	}
	panic("MockArtistService.SearchArtistsFunc not implemented")
}
func (m *MockArtistService) GetArtist(ctx context.Context, id string) (*dto.ArtistResponse, error) {
	if m.GetArtistFunc != nil {
		return m.GetArtistFunc(ctx, id)
	}
	panic("MockArtistService.GetArtistFunc not implemented")
}
func (m *MockArtistService) CreateArtist(ctx context.Context, req *dto.ArtistRequest) (*dto.ArtistResponse, error) {
	if m.CreateArtistFunc != nil {
		return m.CreateArtistFunc(ctx, req)
	}
	panic("MockArtistService.CreateArtistFunc not implemented")
}
func (m *MockArtistService) UpdateArtist(ctx context.Context, id string, req *dto.ArtistRequest) (*dto.ArtistResponse, error) {
	if m.UpdateArtistFunc != nil {
		return m.UpdateArtistFunc(ctx, id, req)
	}
	panic("MockArtistService.UpdateArtistFunc not implemented")
}
func (m *MockArtistService) DeleteArtist(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	if m.DeleteArtistFunc != nil {
		return m.DeleteArtistFunc(ctx, id)
	}
	panic("MockArtistService.DeleteArtistFunc not implemented")
}

// MockShowService
type MockShowService struct {
	ListShowsFunc  func(ctx context.Context) (*dto.ShowsResponse, error)
	CreateShowFunc func(ctx context.Context, req *dto.CreateShowRequest) (*dto.CreateShowResponse, error)
}

func (m *MockShowService) ListShows(ctx context.Context) (*dto.ShowsResponse, error) {
	if m.ListShowsFunc != nil {
		return m.ListShowsFunc(ctx)
	}
	panic("MockShowService.ListShowsFunc not implemented")
}
func (m *MockShowService) CreateShow(ctx context.Context, req *dto.CreateShowRequest) (*dto.CreateShowResponse, error) {
	if m.CreateShowFunc != nil {
		return m.CreateShowFunc(ctx, req)
	}
	panic("MockShowService.CreateShowFunc not implemented")
}

// MockAuthService grants every permission listed in Permissions for the token "good".
type MockAuthService struct {
	Permissions []string
}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*domain.Claims, error) {
	if tokenString != "good" {
		return nil, domain.NewAuthError(domain.CodeInvalidHeader, "Unable to parse authentication token.", http.StatusUnauthorized)
	}
	return &domain.Claims{Permissions: m.Permissions}, nil
}

type mocks struct {
	category *MockCategoryService
	question *MockQuestionService
	quiz     *MockQuizService
	drink    *MockDrinkService
	venue    *MockVenueService
	artist   *MockArtistService
	show     *MockShowService
	auth     *MockAuthService
}

func newMocks() *mocks {
	return &mocks{
		category: &MockCategoryService{},
		question: &MockQuestionService{},
		quiz:     &MockQuizService{},
		drink:    &MockDrinkService{},
		venue:    &MockVenueService{},
		artist:   &MockArtistService{},
		show:     &MockShowService{},
		auth:     &MockAuthService{},
	}
}

func setupApp(m *mocks) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app.Group("/api"), handler.Handlers{
		Category: handler.NewCategoryHandler(m.category, m.question),
		Question: handler.NewQuestionHandler(m.question),
		Quiz:     handler.NewQuizHandler(m.quiz),
		Drink:    handler.NewDrinkHandler(m.drink),
		Venue:    handler.NewVenueHandler(m.venue),
		Artist:   handler.NewArtistHandler(m.artist),
		Show:     handler.NewShowHandler(m.show),
	}, m.auth)
	return app
}

type request struct {
	method string
	path   string
	body   interface{}
	token  string
}

func perform(t *testing.T, app *fiber.App, r request) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if r.body != nil {
		switch b := r.body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewBuffer(raw)
		}
	}

	req := httptest.NewRequest(r.method, r.path, reader)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func decodeError(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	return errResp
}
