package publisher

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the file does not exist in the repository
	ErrNotFound = errors.New("file not found in repository")

	// ErrUnauthorized indicates that the token was rejected or lacks permission
	ErrUnauthorized = errors.New("publisher token rejected")

	// ErrRateLimited indicates that the API rate limit was exceeded
	ErrRateLimited = errors.New("publisher rate limit exceeded")

	// ErrConflict indicates that the file changed since it was fetched
	ErrConflict = errors.New("file changed since it was fetched")

	// ErrNoToken is returned when publishing without a token
	ErrNoToken = errors.New("publisher token is not set")
)

// ConflictError describes a rejected commit: the version token no longer
// matches the file. Повтор не выполняется.
type ConflictError struct {
	Path    string
	SHA     string
	Message string
	Status  int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("commit to %s rejected (%d): version %s is stale: %s", e.Path, e.Status, e.SHA, e.Message)
}

// Is позволяет errors.Is(err, ErrConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// APIError ошибка API с кодом ответа; Unwrap возвращает типизированную ошибку
type APIError struct {
	kind    error
	Message string
	Status  int
}

func (e *APIError) Error() string {
	if e.kind != nil {
		return fmt.Sprintf("%v (%d): %s", e.kind, e.Status, e.Message)
	}
	return fmt.Sprintf("publisher api error (%d): %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
