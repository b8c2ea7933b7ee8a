package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

type FormHandler struct {
	formService ports.FormService
}

func NewFormHandler(formService ports.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

type formRequest struct {
	Data map[string]any `json:"data" validate:"required"`
}

func (h *FormHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req formRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	form, err := h.formService.Create(c.Request().Context(), actor, req.Data)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Form created successfully", form)
}

func (h *FormHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	form, err := h.formService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Form retrieved successfully", form)
}

func (h *FormHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req formRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	form, err := h.formService.Update(c.Request().Context(), actor, c.Param("id"), req.Data)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Form updated successfully", form)
}

func (h *FormHandler) Submit(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	form, err := h.formService.Submit(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Form submitted successfully", form)
}

// ListMine returns the forms owned by the caller.
func (h *FormHandler) ListMine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	forms, err := h.formService.ListByUser(c.Request().Context(), actor, actor.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Forms retrieved successfully", forms)
}

// ListByUser returns another user's forms; the service enforces owner-or-admin.
func (h *FormHandler) ListByUser(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	forms, err := h.formService.ListByUser(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Forms retrieved successfully", forms)
}

func (h *FormHandler) ListAll(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	forms, err := h.formService.ListAll(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Forms retrieved successfully", forms)
}

func (h *FormHandler) Stats(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.formService.StatsByUser(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Form stats retrieved successfully", stats)
}

func (h *FormHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.formService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Form deleted successfully", nil)
}
