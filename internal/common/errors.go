// Package common defines the sentinel errors shared across the repository,
// service and handler layers. Callers match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("storage unavailable")

	// Validation errors.
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateUsername = errors.New("username already taken")

	// Auth errors. ErrInvalidCredentials deliberately covers both an unknown
	// username and a wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
)
