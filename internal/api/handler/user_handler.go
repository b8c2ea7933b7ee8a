package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// UserHandler covers the pre-registration flow: OTP email verification and
// identity-document upload.
type UserHandler struct {
	documentService ports.DocumentService
}

func NewUserHandler(documentService ports.DocumentService) *UserHandler {
	return &UserHandler{documentService: documentService}
}

type sendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type uploadRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,phone10"`
	NationalID string `json:"nationalId" validate:"required,nid12"`
	Avatar     string `json:"avatar" validate:"required"`
	Signature  string `json:"signature" validate:"required"`
}

func (h *UserHandler) SendOTP(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.documentService.SendOTP(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "OTP sent to email", nil)
}

func (h *UserHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.documentService.VerifyOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "OTP verified successfully", nil)
}

func (h *UserHandler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	doc, err := h.documentService.Upload(c.Request().Context(), ports.DocumentInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Photo:      req.Avatar,
		Signature:  req.Signature,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Documents uploaded successfully", doc)
}
