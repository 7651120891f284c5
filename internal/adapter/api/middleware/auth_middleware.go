package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"roadwatch/internal/domain/repository"
	"roadwatch/internal/infrastructure/auth"
)

type AuthMiddleware struct {
	tokenManager *auth.TokenManager
	userRepo     repository.UserRepository
}

func NewAuthMiddleware(tokenManager *auth.TokenManager, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenManager: tokenManager,
		userRepo:     userRepo,
	}
}

// Authenticate resolves the bearer credential to an actor and stores it on
// the context. Missing, malformed, expired and unknown-subject credentials
// all collapse to the same generic 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		uid, err := m.tokenManager.Verify(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		c.Set("user", user)
		c.Set("uid", user.ID)

		return next(c)
	}
}
