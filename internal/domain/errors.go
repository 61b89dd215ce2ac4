package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnprocessable ErrorCode = "UNPROCESSABLE"
	CodeConflict      ErrorCode = "CONFLICT"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Authorization errors, in the coffee shop client's wire format
	CodeAuthHeaderMissing ErrorCode = "authorization_header_missing"
	CodeInvalidHeader     ErrorCode = "invalid_header"
	CodeTokenExpired      ErrorCode = "token_expired"
	CodeInvalidClaims     ErrorCode = "invalid_claims"
	CodeForbidden         ErrorCode = "unauthorized"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that is rendered as response details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound      = &DomainError{Code: CodeNotFound}
	ErrInvalidInput  = &DomainError{Code: CodeInvalidInput}
	ErrConflict      = &DomainError{Code: CodeConflict}
	ErrUnprocessable = &DomainError{Code: CodeUnprocessable}
)

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnprocessableError(message string, err error) *DomainError {
	return NewError(CodeUnprocessable, message, err)
}

func NewConflictError(message string) *DomainError {
	return NewError(CodeConflict, message, nil)
}

func NewQuestionNotFoundError(questionID string) *DomainError {
	return NewError(CodeNotFound, fmt.Sprintf("Question not found with ID: %s", questionID), nil).
		WithContext("question_id", questionID)
}

func NewCategoryNotFoundError(categoryID string) *DomainError {
	return NewError(CodeNotFound, fmt.Sprintf("Category not found with ID: %s", categoryID), nil).
		WithContext("category_id", categoryID)
}

func NewDrinkNotFoundError(drinkID string) *DomainError {
	return NewError(CodeNotFound, fmt.Sprintf("Drink not found with ID: %s", drinkID), nil).
		WithContext("drink_id", drinkID)
}

func NewVenueNotFoundError(venueID string) *DomainError {
	return NewError(CodeNotFound, fmt.Sprintf("Venue not found with ID: %s", venueID), nil).
		WithContext("venue_id", venueID)
}

func NewArtistNotFoundError(artistID string) *DomainError {
	return NewError(CodeNotFound, fmt.Sprintf("Artist not found with ID: %s", artistID), nil).
		WithContext("artist_id", artistID)
}

// AuthError is returned by token verification and permission checks.
type AuthError struct {
	Code        ErrorCode
	Description string
	Status      int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func NewAuthError(code ErrorCode, description string, status int) *AuthError {
	return &AuthError{Code: code, Description: description, Status: status}
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e FieldError) Error() string {
	return e.Message
}

// ValidationErrors collects field errors from one request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Code: CodeMissingField, Field: field, Message: fmt.Sprintf("%s is required", field)}
}

func NewInvalidFormatError(field string, value interface{}) FieldError {
	return FieldError{Code: CodeInvalidFormat, Field: field, Message: fmt.Sprintf("%s has an invalid format", field), Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) FieldError {
	return FieldError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}
