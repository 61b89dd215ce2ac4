package dto

import "trivia-api/internal/domain"

// ErrorResponse represents an error in the API response
// @Description Error envelope
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Error   int                    `json:"error"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Errors  []domain.FieldError    `json:"errors,omitempty"`
}
