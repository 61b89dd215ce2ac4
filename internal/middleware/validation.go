package middleware

import (
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedPageKey = "validated_page"
	ValidatedIDKey   = "validated_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidatePage validates the page query parameter and stores it under ValidatedPageKey
func (vm *ValidationMiddleware) ValidatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, errors := vm.validator.ParsePage(c.Query("page"))
		if len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedPageKey, page)
		return c.Next()
	}
}

// ValidateIDParam validates the :id path parameter and stores it under ValidatedIDKey
func (vm *ValidationMiddleware) ValidateIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateID("id", id); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// PageFrom returns the validated page, defaulting to 1.
func PageFrom(c *fiber.Ctx) int {
	if page, ok := c.Locals(ValidatedPageKey).(int); ok {
		return page
	}
	return 1
}

// IDFrom returns the validated :id, falling back to the raw parameter.
func IDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals(ValidatedIDKey).(string); ok {
		return id
	}
	return c.Params("id")
}
