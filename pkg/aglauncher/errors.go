package aglauncher

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/instance"
)

// Sentinel errors for common conditions.
var (
	// ErrQuit indicates the window was closed or quit was requested.
	// This is a normal flow control error, not a failure.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates another launcher holds the instance lock.
	ErrAlreadyRunning = instance.ErrLocked
)

// InfrastructureError represents a failure of the launcher's own machinery
// (SDL init failed, font missing, window could not be created). These errors
// are fatal: the launcher shows a message box and exits.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_icons")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aglauncher: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("aglauncher: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit checks if an error is a quit request.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
