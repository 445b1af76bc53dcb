// Package common defines sentinel errors and small helpers shared by the
// driverdesk packages. Callers should match the errors with errors.Is.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Login gate errors.
	ErrUnauthorized = errors.New("invalid login or password")
	ErrLocked       = errors.New("login temporarily locked")

	// Data entry errors.
	ErrValidation      = errors.New("validation error")
	ErrPhotoConstraint = errors.New("photo constraint violated")

	// Session errors.
	ErrSessionClosed = errors.New("session closed")
)
