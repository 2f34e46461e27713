package coordinator

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition violations.
var (
	// ErrPresenterMismatch indicates a screen handed to a Viewable does not
	// implement the presenter interface the coordinator requires.
	ErrPresenterMismatch = errors.New("screen does not implement the presenter interface")

	// ErrNilControllable indicates a Viewable was built without a screen.
	ErrNilControllable = errors.New("screen is nil")
)

// PreconditionError reports a programming error detected while wiring the
// coordinator tree. These are not runtime conditions to recover from; the
// Must constructors panic with them.
type PreconditionError struct {
	Op     string // Operation that failed (e.g., "viewable")
	Detail string // Optional context such as the offending type
	Err    error  // Underlying error
}

func (e *PreconditionError) Error() string {
	msg := fmt.Sprintf("coordinator: %s", e.Op)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return msg
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// NewPreconditionError creates a new precondition error.
func NewPreconditionError(op string, err error, detail string) *PreconditionError {
	return &PreconditionError{Op: op, Err: err, Detail: detail}
}

// IsPreconditionError checks if an error is a precondition error.
func IsPreconditionError(err error) bool {
	var preErr *PreconditionError
	return errors.As(err, &preErr)
}
