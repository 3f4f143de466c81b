package handlers

import (
	"errors"
	"net/http"
)

// internalErrorBody is returned for failures the caller cannot fix.
const internalErrorBody = "internal server error"

var (
	// ErrInvalidEvent means the payload is not a JSON object.
	ErrInvalidEvent = errors.New("invalid event")
	// ErrMissingMessage means no message could be located in the event.
	ErrMissingMessage = errors.New("missing message")
	// ErrInvalidBody means the event body is not a JSON object.
	ErrInvalidBody = errors.New("invalid body")
	// ErrInvalidMessage means the message is present but not a string.
	ErrInvalidMessage = errors.New("invalid message")
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps an extraction error to the status code reported to the caller
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case isClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// isClientError checks if an error was caused by the request contents
func isClientError(err error) bool {
	return errors.Is(err, ErrInvalidEvent) ||
		errors.Is(err, ErrMissingMessage) ||
		errors.Is(err, ErrInvalidBody) ||
		errors.Is(err, ErrInvalidMessage)
}
