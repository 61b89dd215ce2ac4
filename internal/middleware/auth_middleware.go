package middleware

import (
	"net/http"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	ClaimsKey           = "claims" // Key for storing *domain.Claims in fiber.Ctx locals
)

// TokenFromHeader extracts the bearer token from an Authorization header value.
func TokenFromHeader(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", domain.NewAuthError(domain.CodeAuthHeaderMissing, "Authorization header is expected.", http.StatusUnauthorized)
	}

	switch {
	case !strings.EqualFold(parts[0], "bearer"):
		return "", domain.NewAuthError(domain.CodeInvalidHeader, `Authorization header must start with "Bearer".`, http.StatusUnauthorized)
	case len(parts) == 1:
		return "", domain.NewAuthError(domain.CodeInvalidHeader, "Token not found.", http.StatusUnauthorized)
	case len(parts) > 2:
		return "", domain.NewAuthError(domain.CodeInvalidHeader, "Authorization header must be bearer token.", http.StatusUnauthorized)
	}
	return parts[1], nil
}

// RequiresPermission protects a route with a valid bearer token that grants permission.
// The verified claims are stored under ClaimsKey.
func RequiresPermission(authService service.AuthService, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := TokenFromHeader(c.Get(AuthorizationHeader))
		if err != nil {
			return err
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			return err
		}

		if err := service.CheckPermission(claims, permission); err != nil {
			logger.Get().Info("Permission denied",
				zap.String("subject", claims.Subject),
				zap.String("permission", permission),
			)
			return err
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by RequiresPermission, or nil.
func ClaimsFrom(c *fiber.Ctx) *domain.Claims {
	claims, _ := c.Locals(ClaimsKey).(*domain.Claims)
	return claims
}
