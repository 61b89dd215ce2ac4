package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the API handlers mounted by RegisterRoutes.
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Drink    *DrinkHandler
	Venue    *VenueHandler
	Artist   *ArtistHandler
	Show     *ShowHandler
}

// RegisterRoutes mounts the trivia, coffee shop and venue booking routes on api (normally the /api group).
func RegisterRoutes(api fiber.Router, h Handlers, authService service.AuthService) {
	vm := middleware.NewValidationMiddleware()

	// Trivia routes
	api.Get("/categories", h.Category.GetCategories)
	api.Post("/categories", h.Category.CreateCategory)
	api.Get("/categories/:id/questions", vm.ValidateIDParam(), vm.ValidatePage(), h.Category.GetCategoryQuestions)

	api.Get("/questions", vm.ValidatePage(), h.Question.GetQuestions)
	api.Post("/questions", h.Question.CreateQuestion)
	api.Post("/questions/search", vm.ValidatePage(), h.Question.SearchQuestions)
	api.Delete("/questions/:id", vm.ValidateIDParam(), vm.ValidatePage(), h.Question.DeleteQuestion)

	api.Post("/quizzes", h.Quiz.PlayQuiz)

	// Coffee shop routes
	api.Get("/drinks", h.Drink.GetDrinks)
	api.Get("/drinks-detail", middleware.RequiresPermission(authService, domain.PermissionGetDrinksDetail), h.Drink.GetDrinksDetail)
	api.Post("/drinks", middleware.RequiresPermission(authService, domain.PermissionPostDrinks), h.Drink.CreateDrink)
	api.Patch("/drinks/:id", middleware.RequiresPermission(authService, domain.PermissionPatchDrinks), vm.ValidateIDParam(), h.Drink.UpdateDrink)
	api.Delete("/drinks/:id", middleware.RequiresPermission(authService, domain.PermissionDeleteDrinks), vm.ValidateIDParam(), h.Drink.DeleteDrink)

	// Venue booking routes
	api.Get("/venues", h.Venue.ListVenues)
	api.Post("/venues", h.Venue.CreateVenue)
	api.Post("/venues/search", h.Venue.SearchVenues)
	api.Get("/venues/:id", vm.ValidateIDParam(), h.Venue.GetVenue)
	api.Put("/venues/:id", vm.ValidateIDParam(), h.Venue.UpdateVenue)
	api.Delete("/venues/:id", vm.ValidateIDParam(), h.Venue.DeleteVenue)

	api.Get("/artists", h.Artist.ListArtists)
	api.Post("/artists", h.Artist.CreateArtist)
	api.Post("/artists/search", h.Artist.SearchArtists)
	api.Get("/artists/:id", vm.ValidateIDParam(), h.Artist.GetArtist)
	api.Put("/artists/:id", vm.ValidateIDParam(), h.Artist.UpdateArtist)
	api.Delete("/artists/:id", vm.ValidateIDParam(), h.Artist.DeleteArtist)

	api.Get("/shows", h.Show.ListShows)
	api.Post("/shows", h.Show.CreateShow)
}
