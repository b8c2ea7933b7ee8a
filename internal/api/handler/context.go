package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// ContextUserKey is where the Authenticate middleware stores the resolved
// identity for downstream handlers.
const ContextUserKey = "auth.user"

// currentUser extracts the identity injected by the Authenticate middleware
// and fast-fails before any service call: its presence proves the middleware
// ran; its absence means a route was wired without the gate.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(ContextUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
