package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

type AgreementHandler struct {
	agreementService ports.AgreementService
}

func NewAgreementHandler(agreementService ports.AgreementService) *AgreementHandler {
	return &AgreementHandler{agreementService: agreementService}
}

type agreementRequest struct {
	FormID        string `json:"formId"`
	AgreementText string `json:"agreementText" validate:"required"`
	Signature     string `json:"signature" validate:"required"`
}

func (h *AgreementHandler) Submit(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req agreementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	agreement, err := h.agreementService.Submit(c.Request().Context(), actor, ports.AgreementInput{
		FormID:        req.FormID,
		AgreementText: req.AgreementText,
		Signature:     req.Signature,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Agreement signed successfully", agreement)
}

func (h *AgreementHandler) ListByUser(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	agreements, err := h.agreementService.ListByUser(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Agreements retrieved successfully", agreements)
}
