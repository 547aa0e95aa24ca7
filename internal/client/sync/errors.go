package sync

import "errors"

var (
	// ErrAuthRequired indicates that editing needs an authenticated session
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotEditing indicates that the operation needs an active edit session
	ErrNotEditing = errors.New("not in edit mode")

	// ErrResetCancelled indicates that the user declined the reset
	ErrResetCancelled = errors.New("reset cancelled")

	// ErrNotStarted is returned by operations called before Start
	ErrNotStarted = errors.New("orchestrator is not started")

	// ErrAlreadyStarted is returned by a second Start
	ErrAlreadyStarted = errors.New("orchestrator is already started")

	// ErrClosed is returned after Close
	ErrClosed = errors.New("orchestrator is closed")
)
