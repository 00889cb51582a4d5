// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/table"

	"github.com/robgonnella/go-masscan/internal/logger"
	"github.com/robgonnella/go-masscan/pkg/masscan"
	"github.com/robgonnella/go-masscan/pkg/pipeline"
	"github.com/robgonnella/go-masscan/pkg/portspec"
)

type Option = func(c *Core)

// WithOutputDir sets the directory target lists are read from and scan
// artifacts are written to
func WithOutputDir(dir string) Option {
	return func(c *Core) {
		c.dir = dir
	}
}

// WithWriter sets where the run summary table is rendered
func WithWriter(w io.Writer) Option {
	return func(c *Core) {
		c.out = w
	}
}

// Core runs a single masscan task through the pipeline runner and renders
// a summary of the outcome
type Core struct {
	params   masscan.Params
	executor pipeline.Executor
	dir      string
	out      io.Writer
	log      logger.Logger
}

// New returns a new Core using the provided executor
func New(executor pipeline.Executor, opts ...Option) *Core {
	c := &Core{
		executor: executor,
		dir:      ".",
		out:      os.Stdout,
		log:      logger.New(),
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// Initialize stores the scan parameters for the next Run
func (c *Core) Initialize(params masscan.Params) {
	c.params = params
}

// Run drives the masscan task to completion and prints a summary table
func (c *Core) Run(ctx context.Context) error {
	start := time.Now()

	task := masscan.NewTask(c.params, masscan.WithDirectory(c.dir))

	finalState := pipeline.StatePending

	runner := pipeline.NewRunner(
		pipeline.NewFileTargetProvider(c.dir),
		c.executor,
		pipeline.WithStateNotifications(func(sc *pipeline.StateChange) {
			finalState = sc.State

			c.log.Debug().
				Str("task", sc.Task).
				Str("state", string(sc.State)).
				Msg("state change")
		}),
	)

	err := runner.Run(ctx, task)

	c.printSummary(task, finalState, time.Since(start))

	return err
}

func (c *Core) printSummary(
	task *masscan.Task,
	state pipeline.State,
	duration time.Duration,
) {
	summary := table.NewWriter()
	summary.SetOutputMirror(c.out)
	summary.AppendHeader(table.Row{"TASK", "STATE", "OUTPUT", "DURATION"})

	summary.AppendRow(table.Row{
		task.Name(),
		string(state),
		task.OutputPath(),
		duration.Round(time.Millisecond).String(),
	})

	summary.Render()
}

// ExitCode maps an error to the status this process should exit with.
// Each configuration violation gets its own code so operators can tell
// them apart; external process failures surface the scanner's own code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, portspec.ErrConflictingPortSpec):
		return 1
	case errors.Is(err, portspec.ErrMissingPortSpec):
		return 2
	case errors.Is(err, portspec.ErrInvalidPortCount):
		return 3
	}

	var procErr *pipeline.ExternalProcessError

	if errors.As(err, &procErr) && procErr.ExitCode > 0 {
		return procErr.ExitCode
	}

	return 1
}
