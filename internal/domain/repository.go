package domain

import (
	"context"
	"time"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns all categories ordered by ID
	GetAllCategories(ctx context.Context) ([]*Category, error)

	// GetCategoryByID returns nil, nil when the category does not exist
	GetCategoryByID(ctx context.Context, id string) (*Category, error)

	// SaveCategory persists a new category and assigns its ID
	SaveCategory(ctx context.Context, category *Category) error
}

// QuestionRepository defines the interface for question persistence.
// Listing methods order by ID.
type QuestionRepository interface {
	// ListQuestions returns one page of all questions
	ListQuestions(ctx context.Context, page Page) ([]*Question, error)

	// CountQuestions returns the number of questions
	CountQuestions(ctx context.Context) (int, error)

	// ListQuestionsByCategory returns one page of a category's questions
	// and the category's total question count
	ListQuestionsByCategory(ctx context.Context, categoryID string, page Page) (*QuestionPage, error)

	// SearchQuestions matches term case-insensitively as a substring of the question text
	SearchQuestions(ctx context.Context, term string, page Page) (*QuestionPage, error)

	// GetAllQuestions returns every question, unpaginated
	GetAllQuestions(ctx context.Context) ([]*Question, error)

	// GetQuestionsByCategory returns every question in a category, unpaginated
	GetQuestionsByCategory(ctx context.Context, categoryID string) ([]*Question, error)

	// SaveQuestion persists a new question and assigns its ID
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion returns ErrNotFound when no row was deleted
	DeleteQuestion(ctx context.Context, id string) error
}

// DrinkRepository defines the interface for drink persistence
type DrinkRepository interface {
	GetAllDrinks(ctx context.Context) ([]*Drink, error)

	// GetDrinkByID returns nil, nil when the drink does not exist
	GetDrinkByID(ctx context.Context, id string) (*Drink, error)

	// GetDrinkByTitle returns nil, nil when no drink has the title
	GetDrinkByTitle(ctx context.Context, title string) (*Drink, error)

	SaveDrink(ctx context.Context, drink *Drink) error

	// UpdateDrink returns ErrNotFound when no row was updated
	UpdateDrink(ctx context.Context, drink *Drink) error

	// DeleteDrink returns ErrNotFound when no row was deleted
	DeleteDrink(ctx context.Context, id string) error
}

// VenueRepository defines the interface for venue persistence
type VenueRepository interface {
	// GetAllVenues orders by state, city, then name
	GetAllVenues(ctx context.Context) ([]*Venue, error)

	// GetVenueByID returns nil, nil when the venue does not exist
	GetVenueByID(ctx context.Context, id string) (*Venue, error)

	// SearchVenues matches term case-insensitively as a substring of the name
	SearchVenues(ctx context.Context, term string) ([]*Venue, error)

	SaveVenue(ctx context.Context, venue *Venue) error

	// UpdateVenue returns ErrNotFound when no row was updated
	UpdateVenue(ctx context.Context, venue *Venue) error

	// DeleteVenue returns ErrNotFound when no row was deleted. The venue's shows are deleted with it.
	DeleteVenue(ctx context.Context, id string) error
}

// ArtistRepository defines the interface for artist persistence
type ArtistRepository interface {
	// GetAllArtists orders by name
	GetAllArtists(ctx context.Context) ([]*Artist, error)

	// GetArtistByID returns nil, nil when the artist does not exist
	GetArtistByID(ctx context.Context, id string) (*Artist, error)

	// SearchArtists matches term case-insensitively as a substring of the name
	SearchArtists(ctx context.Context, term string) ([]*Artist, error)

	SaveArtist(ctx context.Context, artist *Artist) error

	// UpdateArtist returns ErrNotFound when no row was updated
	UpdateArtist(ctx context.Context, artist *Artist) error

	// DeleteArtist returns ErrNotFound when no row was deleted. The artist's shows are deleted with it.
	DeleteArtist(ctx context.Context, id string) error
}

// ShowRepository defines the interface for show persistence.
// Listings are ordered by start time.
type ShowRepository interface {
	ListShows(ctx context.Context) ([]ShowListing, error)
	ListShowsByVenue(ctx context.Context, venueID string) ([]ShowListing, error)
	ListShowsByArtist(ctx context.Context, artistID string) ([]ShowListing, error)

	// CountUpcomingByVenue maps venue ID to its number of shows starting after now.
	// Venues with no upcoming show are absent from the map.
	CountUpcomingByVenue(ctx context.Context, now time.Time) (map[string]int, error)

	// CountUpcomingByArtist is CountUpcomingByVenue keyed by artist ID
	CountUpcomingByArtist(ctx context.Context, now time.Time) (map[string]int, error)

	SaveShow(ctx context.Context, show *Show) error
}

// TransactionManager runs fn inside a single database transaction.
// Repositories pick the transaction up from the context passed to fn.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
