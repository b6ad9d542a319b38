package domain

import "errors"

// Sentinel errors shared across store implementations and services.
var (
	// ErrNotFound is returned when a row does not exist for the given identifier.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a request fails form-boundary validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateEmail is returned when signing up with an email already in use.
	ErrDuplicateEmail = errors.New("email already in use")
)
