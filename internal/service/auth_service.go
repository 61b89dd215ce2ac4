package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthService verifies bearer tokens issued by the configured provider.
type AuthService interface {
	// ValidateJWT verifies signature, expiry, audience and issuer. Failures
	// are returned as *domain.AuthError.
	ValidateJWT(ctx context.Context, tokenString string) (*domain.Claims, error)
}

type authServiceImpl struct {
	cfg    config.AuthConfig
	jwks   *jwksCache
	parser *jwt.Parser
}

// NewAuthService creates a new instance of AuthService. httpClient is used
// for JWKS requests and may be nil.
func NewAuthService(cfg config.AuthConfig, httpClient *http.Client) (AuthService, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{cfg.Algorithm})}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	if iss := cfg.Issuer(); iss != "" {
		opts = append(opts, jwt.WithIssuer(iss))
	}

	s := &authServiceImpl{cfg: cfg, parser: jwt.NewParser(opts...)}
	switch cfg.Algorithm {
	case "HS256":
		if cfg.Secret == "" {
			return nil, errors.New("auth secret is required for HS256")
		}
	case "RS256":
		if cfg.Domain == "" {
			return nil, errors.New("auth domain is required for RS256")
		}
		s.jwks = newJWKSCache(cfg.JWKSURL(), cfg.JWKSTTL, cfg.JWKSMinRefresh, httpClient)
	default:
		return nil, fmt.Errorf("unsupported auth algorithm: %q", cfg.Algorithm)
	}
	return s, nil
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if s.jwks == nil {
			return []byte(s.cfg.Secret), nil
		}
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token header has no kid")
		}
		return s.jwks.key(ctx, kid)
	})
	if err != nil {
		return nil, s.classify(err)
	}
	if !token.Valid {
		return nil, domain.NewAuthError(domain.CodeInvalidHeader, "Unable to parse authentication token.", http.StatusUnauthorized)
	}
	return claims, nil
}

func (s *authServiceImpl) classify(err error) *domain.AuthError {
	appLogger := logger.Get()
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		appLogger.Debug("JWT token expired", zap.Error(err))
		return domain.NewAuthError(domain.CodeTokenExpired, "Token expired.", http.StatusUnauthorized)
	case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		appLogger.Debug("JWT claims rejected", zap.Error(err))
		return domain.NewAuthError(domain.CodeInvalidClaims, "Incorrect claims. Please, check the audience and issuer.", http.StatusUnauthorized)
	case errors.Is(err, errUnknownKeyID):
		appLogger.Warn("JWT signed with unknown key", zap.Error(err))
		return domain.NewAuthError(domain.CodeInvalidHeader, "Unable to find the appropriate key.", http.StatusUnauthorized)
	default:
		appLogger.Warn("JWT validation failed", zap.Error(err))
		return domain.NewAuthError(domain.CodeInvalidHeader, "Unable to parse authentication token.", http.StatusUnauthorized)
	}
}

// CheckPermission verifies that claims carry a permissions claim that grants permission.
func CheckPermission(claims *domain.Claims, permission string) error {
	if claims.Permissions == nil {
		return domain.NewAuthError(domain.CodeInvalidClaims, "Permissions not included in JWT.", http.StatusBadRequest)
	}
	if !claims.HasPermission(permission) {
		return domain.NewAuthError(domain.CodeForbidden, "Permission not found.", http.StatusForbidden)
	}
	return nil
}
