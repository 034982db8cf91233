package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status and message returned to API clients.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError builds an HTTPError whose HTTP status equals code when code is a valid status.
func NewHTTPError(code int, msg string) *HTTPError {
	status := code
	if http.StatusText(code) == "" {
		status = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    msg,
		StatusCode: status,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
