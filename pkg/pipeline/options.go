// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

type RunnerOption = func(r *Runner)

// WithStateNotifications registers a callback invoked on every task state
// transition
func WithStateNotifications(cb func(sc *StateChange)) RunnerOption {
	return func(r *Runner) {
		r.notify = cb
	}
}

// WithLockDir overrides the directory used for in-flight lock files.
// Defaults to the directory of the task's output path.
func WithLockDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.lockDir = dir
	}
}
