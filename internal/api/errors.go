package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// User-facing error messages. These are part of the HTTP contract.
const (
	MsgTitleRequired        = "Title is required"
	MsgTodoNotFound         = "Todo not found"
	MsgInvalidRequestFormat = "Invalid request format"
	MsgUnexpectedError      = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrTodoNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedError
	}

	switch {
	case errors.Is(err, service.ErrTodoNotFound),
		errors.Is(err, store.ErrNotFound):
		return MsgTodoNotFound

	case errors.Is(err, domain.ErrMissingTitle):
		return MsgTitleRequired

	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, domain.ErrValidation):
		return MsgInvalidRequestFormat

	default:
		return MsgUnexpectedError
	}
}

// HandleAPIError maps err to a status code and safe message, logs the
// details and writes the error response.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
}
