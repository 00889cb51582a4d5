// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import "context"

//go:generate mockgen -destination=../../mock/pipeline/pipeline.go -package=mock_pipeline . Task,TargetProvider,Executor

// Dependency is a named reference to an upstream artifact a task needs
// before it can run. The task only declares the need; resolving it is the
// scheduler's job.
type Dependency struct {
	Name       string
	Identifier string
}

// Task is the contract every pipeline stage implements so any scheduler
// implementation can drive it: one dependency set, one completion
// predicate, one executable invocation
type Task interface {
	Name() string
	Dependencies() []Dependency
	Validate() error
	IsComplete() bool
	OutputPath() string
	BuildInvocation(inputs map[string]string) ([]string, error)
}

// TargetProvider resolves a declared dependency to a concrete artifact
// path on disk
type TargetProvider interface {
	Resolve(dep Dependency) (string, error)
}

// Executor runs an external command described by a literal argument
// vector. Arguments are never joined into a shell string.
type Executor interface {
	Run(ctx context.Context, argv []string) error
}
