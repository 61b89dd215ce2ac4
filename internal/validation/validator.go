package validation

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

const (
	maxQuestionLength   = 1000
	maxAnswerLength     = 1000
	maxSearchTermLength = 200
	maxTitleLength      = 80
	maxIDLength         = 64
	maxNameLength       = 200
	maxCityLength       = 120
	maxAddressLength    = 120
	maxLinkLength       = 500
	maxDescLength       = 500
	maxGenres           = 10
)

var (
	validID    = regexp.MustCompile(`^[0-9A-Za-z_-]+$`)
	validState = regexp.MustCompile(`^[A-Za-z]{2}$`)
	validPhone = regexp.MustCompile(`^\+?[0-9() .-]{7,20}$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ParsePage parses the page query parameter. An empty value means page 1.
func (v *Validator) ParsePage(raw string) (int, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("page", raw)}
	}
	if page < 1 {
		return 0, domain.ValidationErrors{{
			Code:    domain.CodeOutOfRange,
			Field:   "page",
			Message: "page must be 1 or greater",
			Value:   page,
		}}
	}
	return page, nil
}

// ValidateID validates a path or body identifier
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if len(id) > maxIDLength || !validID.MatchString(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// ValidateCreateQuestionRequest validates the create question request
func (v *Validator) ValidateCreateQuestionRequest(req *dto.CreateQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if q := strings.TrimSpace(req.Question); q == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if len(q) > maxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("question", len(q), 1, maxQuestionLength))
	}

	if a := strings.TrimSpace(req.Answer); a == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	} else if len(a) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", len(a), 1, maxAnswerLength))
	}

	if req.Category.IsAny() {
		errors = append(errors, domain.NewMissingFieldError("category"))
	} else {
		errors = append(errors, v.ValidateID("category", req.Category.String())...)
	}

	if req.Difficulty < domain.MinDifficulty || req.Difficulty > domain.MaxDifficulty {
		errors = append(errors, domain.NewOutOfRangeError("difficulty", req.Difficulty, domain.MinDifficulty, domain.MaxDifficulty))
	}

	return errors
}

// ValidateSearchRequest validates a question search. An empty term matches every question.
func (v *Validator) ValidateSearchRequest(req *dto.SearchQuestionsRequest) domain.ValidationErrors {
	if len(req.SearchTerm) > maxSearchTermLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("searchTerm", len(req.SearchTerm), 0, maxSearchTermLength)}
	}
	return nil
}

// ValidatePlayQuizRequest validates the quiz category and previous question IDs
func (v *Validator) ValidatePlayQuizRequest(req *dto.PlayQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if !req.QuizCategory.ID.IsAny() {
		errors = append(errors, v.ValidateID("quiz_category.id", req.QuizCategory.ID.String())...)
	}
	for _, id := range req.PreviousQuestions {
		if id == "" {
			errors = append(errors, domain.NewInvalidFormatError("previous_questions", id))
			break
		}
	}
	return errors
}

// ValidateCreateCategoryRequest validates the create category request
func (v *Validator) ValidateCreateCategoryRequest(req *dto.CreateCategoryRequest) domain.ValidationErrors {
	if t := strings.TrimSpace(req.Type); t == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("type")}
	} else if len(t) > maxTitleLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("type", len(t), 1, maxTitleLength)}
	}
	return nil
}

// ValidateCreateDrinkRequest validates the create drink request
func (v *Validator) ValidateCreateDrinkRequest(req *dto.CreateDrinkRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, validateTitle(req.Title)...)
	if len(req.Recipe) == 0 {
		errors = append(errors, domain.NewMissingFieldError("recipe"))
	}
	errors = append(errors, validateRecipe(req.Recipe)...)
	return errors
}

// ValidateUpdateDrinkRequest validates a drink patch. At least one field must be present.
func (v *Validator) ValidateUpdateDrinkRequest(req *dto.UpdateDrinkRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.Title == nil && req.Recipe == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("title")}
	}
	if req.Title != nil {
		errors = append(errors, validateTitle(*req.Title)...)
	}
	if req.Recipe != nil {
		if len(req.Recipe) == 0 {
			errors = append(errors, domain.NewMissingFieldError("recipe"))
		}
		errors = append(errors, validateRecipe(req.Recipe)...)
	}
	return errors
}

func validateTitle(title string) domain.ValidationErrors {
	t := strings.TrimSpace(title)
	if t == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("title")}
	}
	if len(t) > maxTitleLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("title", len(t), 1, maxTitleLength)}
	}
	return nil
}

func validateRecipe(recipe dto.RecipeInput) domain.ValidationErrors {
	var errors domain.ValidationErrors
	for _, ing := range recipe {
		if strings.TrimSpace(ing.Name) == "" {
			errors = append(errors, domain.NewMissingFieldError("recipe.name"))
		}
		if strings.TrimSpace(ing.Color) == "" {
			errors = append(errors, domain.NewMissingFieldError("recipe.color"))
		}
		if ing.Parts < 1 || ing.Parts > 100 {
			errors = append(errors, domain.NewOutOfRangeError("recipe.parts", ing.Parts, 1, 100))
		}
	}
	return errors
}

// ValidateVenueRequest validates a venue create or edit
func (v *Validator) ValidateVenueRequest(req *dto.VenueRequest) domain.ValidationErrors {
	errors := validateListingFields(req.Name, req.City, req.State, req.Phone, req.Genres)
	errors = append(errors, validateLength("address", req.Address, maxAddressLength)...)
	errors = append(errors, validateLinks(req.ImageLink, req.FacebookLink, req.Website)...)
	errors = append(errors, validateLength("seeking_description", req.SeekingDescription, maxDescLength)...)
	return errors
}

// ValidateArtistRequest validates an artist create or edit
func (v *Validator) ValidateArtistRequest(req *dto.ArtistRequest) domain.ValidationErrors {
	errors := validateListingFields(req.Name, req.City, req.State, req.Phone, req.Genres)
	errors = append(errors, validateLinks(req.ImageLink, req.FacebookLink, req.Website)...)
	errors = append(errors, validateLength("seeking_description", req.SeekingDescription, maxDescLength)...)
	return errors
}

// ValidateCreateShowRequest validates the artist and venue IDs and the start time
func (v *Validator) ValidateCreateShowRequest(req *dto.CreateShowRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, v.ValidateID("artist_id", req.ArtistID.String())...)
	errors = append(errors, v.ValidateID("venue_id", req.VenueID.String())...)
	if req.StartTime.IsZero() {
		errors = append(errors, domain.NewMissingFieldError("start_time"))
	}
	return errors
}

// ValidateNameSearch validates a venue or artist search. An empty term matches everything.
func (v *Validator) ValidateNameSearch(req *dto.SearchRequest) domain.ValidationErrors {
	if len(req.SearchTerm) > maxSearchTermLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("search_term", len(req.SearchTerm), 0, maxSearchTermLength)}
	}
	return nil
}

func validateListingFields(name, city, state, phone string, genres []string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if n := strings.TrimSpace(name); n == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(n) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(n), 1, maxNameLength))
	}
	if c := strings.TrimSpace(city); c == "" {
		errors = append(errors, domain.NewMissingFieldError("city"))
	} else if len(c) > maxCityLength {
		errors = append(errors, domain.NewOutOfRangeError("city", len(c), 1, maxCityLength))
	}
	if st := strings.TrimSpace(state); st == "" {
		errors = append(errors, domain.NewMissingFieldError("state"))
	} else if !validState.MatchString(st) {
		errors = append(errors, domain.NewInvalidFormatError("state", st))
	}
	if p := strings.TrimSpace(phone); p != "" && !validPhone.MatchString(p) {
		errors = append(errors, domain.NewInvalidFormatError("phone", p))
	}
	if len(genres) > maxGenres {
		errors = append(errors, domain.NewOutOfRangeError("genres", len(genres), 0, maxGenres))
	}
	return errors
}

func validateLength(field, value string, limit int) domain.ValidationErrors {
	if n := len(strings.TrimSpace(value)); n > limit {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, n, 0, limit)}
	}
	return nil
}

// validateLinks accepts empty values and absolute http(s) URLs.
func validateLinks(imageLink, facebookLink, website string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	for _, link := range []struct{ field, raw string }{
		{"image_link", imageLink},
		{"facebook_link", facebookLink},
		{"website", website},
	} {
		raw := strings.TrimSpace(link.raw)
		if raw == "" {
			continue
		}
		if len(raw) > maxLinkLength {
			errors = append(errors, domain.NewOutOfRangeError(link.field, len(raw), 0, maxLinkLength))
			continue
		}
		u, err := url.ParseRequestURI(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errors = append(errors, domain.NewInvalidFormatError(link.field, raw))
		}
	}
	return errors
}
