package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for control loop operations.
var (
	// ErrInvalidArgument indicates a constructor received an argument it cannot accept.
	ErrInvalidArgument = errors.New("dynamo: invalid argument")

	// ErrInvalidState indicates a state with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrContextCanceled indicates a run was interrupted.
	ErrContextCanceled = errors.New("dynamo: run canceled by context")
)

// StepError wraps an error with the tick it happened on.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
