// Package common defines shared constants and sentinel errors used across
// the application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (empty or malformed required fields).
	ErrValidation = errors.New("validation error")

	// Auth-specific errors.
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAlreadyExists        = errors.New("already exists")
	ErrInvalidLoginPassword = errors.New("invalid login/password")
)
