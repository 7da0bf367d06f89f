package window

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateWindow another live window is already registered under the id
	ErrDuplicateWindow = errors.New("window already registered")
	// ErrUnknownWindow no live window under the id
	ErrUnknownWindow = errors.New("window not found")
	// ErrShuttingDown the application is exiting, no window may be opened or registered
	ErrShuttingDown = errors.New("application is shutting down")
)

// OperationError wraps a failed show/focus/create on a window.
type OperationError struct {
	Op       string
	WindowID string
	Err      error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s window %s: %v", e.Op, e.WindowID, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func opError(op, id string, err error) error {
	return &OperationError{Op: op, WindowID: id, Err: err}
}
