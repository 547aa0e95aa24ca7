package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no admin session is stored
	ErrAuthNotFound = errors.New("admin session not found")

	// ErrTokenNotFound indicates that no publisher token is stored
	ErrTokenNotFound = errors.New("publisher token not found")

	// ErrMalformed indicates that a stored value could not be parsed.
	// Callers treat it as an empty value and keep working.
	ErrMalformed = errors.New("malformed stored data")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
