package docstore

import "errors"

var (
	// ErrUnavailable indicates that the store cannot be reached
	ErrUnavailable = errors.New("document store unavailable")

	// ErrNotFound indicates that the page has no document yet
	ErrNotFound = errors.New("document not found")

	// ErrMalformed indicates that stored content failed to parse
	ErrMalformed = errors.New("malformed document content")

	// ErrClosed is returned after Close
	ErrClosed = errors.New("document store is closed")
)
