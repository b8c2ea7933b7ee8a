package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrMissingToken, http.StatusBadRequest},
		{domain.ErrInvalidToken, http.StatusBadRequest},
		{domain.ErrOTPInvalid, http.StatusBadRequest},
		{domain.ErrFormAlreadySubmitted, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrTokenRevoked, http.StatusUnauthorized},
		{domain.ErrNotAuthorized, http.StatusUnauthorized},
		{domain.ErrUserBlocked, http.StatusForbidden},
		{domain.ErrAdminOnly, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrEmailNotVerified, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrFormNotFound, http.StatusNotFound},
		{domain.ErrContactNotFound, http.StatusNotFound},
		{domain.ErrAgreementNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		code, msg := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if msg != tc.err.Error() {
			t.Errorf("%v: message rewritten to %q", tc.err, msg)
		}
	}
}

func TestResolveError_Unknown(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	code, msg := resolveError(errors.New("database on fire"), zerolog.Nop(), c)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// Internal details never reach the client.
	if msg != "Internal Server Error" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	code, msg := resolveError(echo.NewHTTPError(http.StatusTeapot, "short and stout"), zerolog.Nop(), c)
	if code != http.StatusTeapot || msg != "short and stout" {
		t.Fatalf("expected passthrough, got %d %q", code, msg)
	}
}
