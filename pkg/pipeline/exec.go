// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/robgonnella/go-masscan/internal/logger"
)

// CommandExecutor runs external commands through os/exec, forwarding the
// process's stdout and stderr to this process
type CommandExecutor struct {
	log logger.Logger
}

// NewCommandExecutor returns a new CommandExecutor
func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{
		log: logger.New(),
	}
}

// Run executes argv[0] with the remaining elements as arguments. The
// command is killed when ctx is canceled. Failures are reported as
// *ExternalProcessError carrying the captured exit code.
func (e *CommandExecutor) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty invocation")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	e.log.Debug().
		Strs("argv", argv).
		Msg("launching external process")

	err := cmd.Run()

	if err == nil {
		return nil
	}

	// prefer reporting cancellation over the resulting kill signal
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var exitErr *exec.ExitError

	if errors.As(err, &exitErr) {
		return &ExternalProcessError{
			ExitCode: exitErr.ExitCode(),
			Err:      err,
		}
	}

	return &ExternalProcessError{
		ExitCode: -1,
		Err:      err,
	}
}
