package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roadwatch/internal/domain/entity"
)

type OfficerMiddleware struct{}

func NewOfficerMiddleware() *OfficerMiddleware {
	return &OfficerMiddleware{}
}

// OfficerOnly gates a route to actors with the officer role. It runs after
// Authenticate, which put the resolved actor on the context.
func (m *OfficerMiddleware) OfficerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*entity.User)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if user.Role != entity.RoleOfficer {
			return echo.NewHTTPError(http.StatusForbidden, "Officer privileges required")
		}

		return next(c)
	}
}
