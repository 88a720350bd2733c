package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTimeBounds is returned when a run is configured with start after end.
	ErrInvalidTimeBounds = errors.New("invalid time bounds")
	// ErrInvalidUpdateRate is returned when the horizon window size is not positive.
	ErrInvalidUpdateRate = errors.New("framework update rate must be positive")
	// ErrTaskFailed is returned when a task reports failure.
	ErrTaskFailed = errors.New("task failed")
	// ErrHorizonExhausted means no instant follows t after the window was expanded.
	// It can only be caused by a defect in horizon maintenance.
	ErrHorizonExhausted = errors.New("no scheduled instant after expansion")
	// ErrRunCancelled is returned when the run context is done before the end time.
	ErrRunCancelled = errors.New("run cancelled")
)

// RunError carries the context of a failed run. Kind is one of the sentinel errors above.
// Phase is only meaningful when Task is set.
type RunError struct {
	Kind    error
	Phase   Phase
	Instant int
	Task    *TaskItem
	Cause   error
}

func (e *RunError) Error() string {
	msg := fmt.Sprintf("%v at t=%d", e.Kind, e.Instant)
	if e.Task != nil {
		msg += fmt.Sprintf(" in %s: %s", e.Phase, e.Task)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *RunError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// TaskFailure builds the error for task failing in phase at instant.
func TaskFailure(phase Phase, instant int, task TaskItem) *RunError {
	return &RunError{Kind: ErrTaskFailed, Phase: phase, Instant: instant, Task: &task}
}
