package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/api/handler"
	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// AdminOnly enforces the admin role on the identity resolved by Authenticate.
// It must be chained after Authenticate.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(handler.ContextUserKey).(*domain.User)
			if user == nil || !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access only")
			}
			return next(c)
		}
	}
}
