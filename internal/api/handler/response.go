package handler

import "github.com/labstack/echo/v4"

// apiResponse is the uniform success envelope.
type apiResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// respond writes the success envelope with the given HTTP status.
func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, apiResponse{
		Status:     "success",
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}
