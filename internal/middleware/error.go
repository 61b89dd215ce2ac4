package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the centralized fiber error handler. Every error leaves the
// API in the same envelope: {"success": false, "error": <status>, "code", "message"}.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get()

		// Handle validation errors
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   http.StatusBadRequest,
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Errors:  validationErrs,
			})
		}

		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			logger.Info("Authorization failed",
				zap.String("path", c.Path()),
				zap.String("code", string(authErr.Code)),
				zap.Int("status", authErr.Status),
			)
			return c.Status(authErr.Status).JSON(dto.ErrorResponse{
				Error:   authErr.Status,
				Code:    string(authErr.Code),
				Message: authErr.Description,
			})
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Cause),
			}
			if statusCode >= http.StatusInternalServerError {
				logger.Error("Domain error occurred", fields...)
			} else {
				logger.Warn("Domain error occurred", fields...)
			}

			response := dto.ErrorResponse{
				Error:   statusCode,
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
			}
			if len(domainErr.Context) > 0 {
				response.Details = domainErr.Context
			}
			return c.Status(statusCode).JSON(response)
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Error:   fiberErr.Code,
				Code:    "HTTP_ERROR",
				Message: fiberMessage(fiberErr),
			})
		}

		// Handle unknown errors
		logger.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   http.StatusInternalServerError,
			Code:    string(domain.CodeInternal),
			Message: "Internal Server Error",
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeConflict:
		return http.StatusConflict
	case domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func fiberMessage(err *fiber.Error) string {
	switch err.Code {
	case http.StatusNotFound:
		return "Resource Not Found"
	case http.StatusMethodNotAllowed:
		return "Method Not Allowed"
	case http.StatusUnprocessableEntity:
		return "Unprocessable"
	}
	return err.Message
}
