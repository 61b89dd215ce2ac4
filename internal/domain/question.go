package domain

import (
	"strings"
	"time"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Category groups trivia questions. Type is the display name ("Science", "Art", ...).
type Category struct {
	ID        string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category instance
func NewCategory(categoryType string) *Category {
	now := time.Now()
	return &Category{
		Type:      strings.TrimSpace(categoryType),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the category
func (c *Category) Validate() error {
	if c.Type == "" {
		return ValidationErrors{NewMissingFieldError("type")}
	}
	return nil
}

// Question is a single trivia question. CategoryID references Category.ID.
type Question struct {
	ID         string
	CategoryID string
	Question   string
	Answer     string
	Difficulty int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewQuestion creates a new Question instance
func NewQuestion(categoryID, question, answer string, difficulty int) *Question {
	now := time.Now()
	return &Question{
		CategoryID: categoryID,
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		Difficulty: difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if q.Question == "" {
		errs = append(errs, NewMissingFieldError("question"))
	}
	if q.Answer == "" {
		errs = append(errs, NewMissingFieldError("answer"))
	}
	if q.CategoryID == "" {
		errs = append(errs, NewMissingFieldError("category"))
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		errs = append(errs, NewOutOfRangeError("difficulty", q.Difficulty, MinDifficulty, MaxDifficulty))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Page is a 1-based page request over an ordered result set.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows skipped before this page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// QuestionPage is one page of questions plus the size of the full result set.
type QuestionPage struct {
	Questions []*Question
	Total     int
}
