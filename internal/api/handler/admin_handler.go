package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type updateProfileRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,phone10"`
	NationalID string `json:"nationalId" validate:"required,nid12"`
	IsAdmin    bool   `json:"isAdmin"`
}

// ListUsers returns all non-admin accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Users retrieved successfully", users)
}

func (h *AdminHandler) BlockUser(c echo.Context) error {
	user, err := h.adminService.BlockUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User blocked successfully", user)
}

func (h *AdminHandler) UnblockUser(c echo.Context) error {
	user, err := h.adminService.UnblockUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User unblocked successfully", user)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.adminService.UpdateProfile(c.Request().Context(), c.Param("id"), ports.UpdateProfileInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		IsAdmin:    req.IsAdmin,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User profile updated successfully", user)
}
