package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone10"`
	Message string `json:"message" validate:"required"`
}

// Submit is the public contact-form intake; no authentication required.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.contactService.Submit(c.Request().Context(), &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message received successfully", msg)
}

func (h *ContactHandler) ListAll(c echo.Context) error {
	msgs, err := h.contactService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Messages retrieved successfully", msgs)
}

func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.contactService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message deleted successfully", nil)
}
