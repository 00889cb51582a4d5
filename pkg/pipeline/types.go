// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"errors"
	"fmt"
)

// State represents a task's position in its lifecycle
type State string

const (
	// StatePending initial state before dependency resolution
	StatePending State = "pending"
	// StateDependencyResolved all upstream artifact paths are known
	StateDependencyResolved State = "dependency_resolved"
	// StateValidated task parameters passed validation
	StateValidated State = "validated"
	// StateRunning external process is executing
	StateRunning State = "running"
	// StateSucceeded process exited cleanly and the output artifact exists
	StateSucceeded State = "succeeded"
	// StateFailed validation, dependency resolution, or the process failed
	StateFailed State = "failed"
)

// StateChange notifies an observer that a task moved to a new state
type StateChange struct {
	Task  string
	State State
}

var (
	// ErrDependencyUnresolved returned when an upstream artifact path is
	// unavailable. The scheduler owns retry and backoff policy.
	ErrDependencyUnresolved = errors.New("upstream artifact is unavailable")
	// ErrOutputMissing returned when the process exits cleanly but the
	// declared output artifact was never produced
	ErrOutputMissing = errors.New("process succeeded but output artifact is missing")
	// ErrTaskInFlight returned when another instance already holds the
	// lock for the same output artifact
	ErrTaskInFlight = errors.New("another instance of this task is already running")
)

// ExternalProcessError reports a non-zero exit or abnormal termination of
// the external process
type ExternalProcessError struct {
	ExitCode int
	Err      error
}

// Error implements the error interface
func (e *ExternalProcessError) Error() string {
	return fmt.Sprintf("external process failed with exit code %d: %s", e.ExitCode, e.Err)
}

// Unwrap returns the underlying process error
func (e *ExternalProcessError) Unwrap() error {
	return e.Err
}
