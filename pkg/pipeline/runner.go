// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"context"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/robgonnella/go-masscan/internal/logger"
)

// Runner drives a single task through its lifecycle:
// pending -> dependency_resolved -> validated -> running -> succeeded|failed.
// Re-invoking a task whose output already exists is a no-op that still
// reports success; a failed run leaves no output and may simply be retried.
type Runner struct {
	provider TargetProvider
	executor Executor
	notify   func(sc *StateChange)
	lockDir  string
	log      logger.Logger
}

// NewRunner returns a Runner using the provided target provider and
// executor
func NewRunner(provider TargetProvider, executor Executor, opts ...RunnerOption) *Runner {
	runner := &Runner{
		provider: provider,
		executor: executor,
		log:      logger.New(),
	}

	for _, o := range opts {
		o(runner)
	}

	return runner
}

// Run executes task, suspending until the external process exits. Config
// violations are fatal and reported before any process launches. The
// runner never retries on its own; that policy belongs to the scheduler.
func (r *Runner) Run(ctx context.Context, task Task) error {
	runID := uuid.New().String()

	log := r.log

	log.Info().
		Str("runId", runID).
		Str("task", task.Name()).
		Msg("starting task")

	r.setState(task, StatePending)

	inputs := map[string]string{}

	for _, dep := range task.Dependencies() {
		path, err := r.provider.Resolve(dep)

		if err != nil {
			r.setState(task, StateFailed)
			return err
		}

		inputs[dep.Name] = path
	}

	r.setState(task, StateDependencyResolved)

	if err := task.Validate(); err != nil {
		log.Error().
			Str("runId", runID).
			Err(err).
			Msg("task configuration is invalid")

		r.setState(task, StateFailed)
		return err
	}

	r.setState(task, StateValidated)

	if task.IsComplete() {
		log.Info().
			Str("runId", runID).
			Str("output", task.OutputPath()).
			Msg("output already exists, skipping")

		r.setState(task, StateSucceeded)
		return nil
	}

	// one in-flight instance per output artifact
	lock := flock.New(r.lockPath(task))

	locked, err := lock.TryLock()

	if err != nil {
		r.setState(task, StateFailed)
		return err
	}

	if !locked {
		r.setState(task, StateFailed)
		return ErrTaskInFlight
	}

	defer func() {
		_ = lock.Unlock()
	}()

	argv, err := task.BuildInvocation(inputs)

	if err != nil {
		r.setState(task, StateFailed)
		return err
	}

	r.setState(task, StateRunning)

	if err := r.executor.Run(ctx, argv); err != nil {
		log.Error().
			Str("runId", runID).
			Err(err).
			Msg("task failed")

		r.setState(task, StateFailed)
		return err
	}

	if !task.IsComplete() {
		r.setState(task, StateFailed)
		return ErrOutputMissing
	}

	log.Info().
		Str("runId", runID).
		Str("output", task.OutputPath()).
		Msg("task succeeded")

	r.setState(task, StateSucceeded)
	return nil
}

func (r *Runner) setState(task Task, state State) {
	if r.notify == nil {
		return
	}

	r.notify(&StateChange{
		Task:  task.Name(),
		State: state,
	})
}

func (r *Runner) lockPath(task Task) string {
	output := task.OutputPath()

	if r.lockDir == "" {
		return output + ".lock"
	}

	return filepath.Join(r.lockDir, filepath.Base(output)+".lock")
}
