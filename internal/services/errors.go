package services

import (
	"errors"
)

// Sentinel errors returned by the services and mapped to HTTP statuses by the handlers.
var (
	ErrValidation             = errors.New("validation failed")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrForbidden              = errors.New("permission denied")
	ErrUserNotFound           = errors.New("user not found")
	ErrCatNotFound            = errors.New("cat not found")
)

// ValidationError describes the first invalid field of a request.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
