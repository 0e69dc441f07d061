package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNilCallback is returned by ReadLine when no callback is given.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrNoBuffer indicates an operation needs an open buffer.
	ErrNoBuffer = errors.New("no buffer open")

	// ErrSaveFailed indicates the host reported a non-zero save status.
	ErrSaveFailed = errors.New("save failed")

	// ErrWatcherClosed is returned by a closed FileWatcher.
	ErrWatcherClosed = errors.New("watcher closed")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "save", "open")
	Target string // Target of the operation (e.g., file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}
