package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/api/metrics"
	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a token pair.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, pair, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		NationalID: req.NationalID,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()

	return respond(c, http.StatusCreated, "User registered successfully", registerResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	})
}

// Login authenticates a user and returns a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()

	return respond(c, http.StatusOK, "Login successful", loginResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		ID:           result.UserID,
		IsAdmin:      result.IsAdmin,
	})
}

// Refresh mints a brand-new token pair from a valid refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.RefreshToken == "" {
		return domain.ErrMissingToken
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("refresh", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("refresh", "success").Inc()

	return respond(c, http.StatusOK, "Token refreshed", pair)
}

// Logout blacklists the presented access token and instructs the client to
// discard its session cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("logout", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("logout", "success").Inc()

	clearCookie(c, "accessToken")
	clearCookie(c, "refreshToken")
	return respond(c, http.StatusOK, "Logged out successfully", nil)
}

// Verify reports token validity without any state change.
func (h *AuthHandler) Verify(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	result, err := h.authService.VerifyToken(c.Request().Context(), token)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("verify", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("verify", "success").Inc()

	return respond(c, http.StatusOK, "Token is valid", result)
}

// bearerToken extracts the token from the Authorization header. A missing or
// malformed header is a 400 on the auth endpoints, matching the logout
// contract; the request gate applies its own 401 semantics separately.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domain.ErrMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrMissingToken
	}
	return parts[1], nil
}

func clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
}
