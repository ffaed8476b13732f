package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrTodoNotFound indicates that no todo has the requested ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrInvalidInput indicates that creation input is missing a required field.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidInput = errors.New("invalid input")
)
