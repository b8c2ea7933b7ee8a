package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/api/handler"
	"github.com/aspirecareer/consultancy-api/internal/api/metrics"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// bearerToken pulls the token out of the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Authenticate is the request gate run before every protected handler: it
// extracts the bearer token, verifies signature and expiry, resolves the
// subject to a live user record and attaches the sanitized identity to the
// request context. Any failure is a 401.
func Authenticate(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			claims, err := tokens.Verify(token, ports.VerifyOptions{})
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, user not found")
			}

			c.Set(handler.ContextUserKey, user.Sanitized())
			return next(c)
		}
	}
}

// CheckBlacklist rejects requests whose bearer token has been revoked via
// logout. It runs as an independent layer before any role-based gate, so a
// blacklisted token is turned away even if it would otherwise verify.
func CheckBlacklist(blacklist ports.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				// Leave the missing-token error to the Authenticate layer.
				return next(c)
			}

			revoked, err := blacklist.IsBlacklisted(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if revoked {
				metrics.BlacklistChecksTotal.WithLabelValues("hit").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is blacklisted. Please login again.")
			}
			metrics.BlacklistChecksTotal.WithLabelValues("miss").Inc()
			return next(c)
		}
	}
}
