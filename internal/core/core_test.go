// SPDX-License-Identifier: GPL-3.0-or-later

package core_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/robgonnella/go-masscan/internal/core"
	mock_pipeline "github.com/robgonnella/go-masscan/mock/pipeline"
	"github.com/robgonnella/go-masscan/pkg/masscan"
	"github.com/robgonnella/go-masscan/pkg/pipeline"
	"github.com/robgonnella/go-masscan/pkg/portspec"
)

func TestCoreRun(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("runs task to completion", func(st *testing.T) {
		dir := st.TempDir()
		output := filepath.Join(dir, "scan.acme.json")

		err := os.WriteFile(
			filepath.Join(dir, "acme.ips"),
			[]byte("10.0.0.0/24\n"),
			0644,
		)

		require.NoError(st, err)

		executor := mock_pipeline.NewMockExecutor(ctrl)

		executor.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, argv []string) error {
				// the external process produces the artifact
				return os.WriteFile(output, []byte("[]"), 0644)
			})

		buf := bytes.NewBuffer([]byte{})

		runner := core.New(
			executor,
			core.WithOutputDir(dir),
			core.WithWriter(buf),
		)

		runner.Initialize(masscan.Params{
			TargetFile: "acme",
			Rate:       "1000",
			Interface:  "eth0",
			Ports:      "80,443",
		})

		err = runner.Run(context.Background())

		assert.NoError(st, err)
		assert.Contains(st, buf.String(), "succeeded")
		assert.Contains(st, buf.String(), "scan.acme.json")
	})

	t.Run("skips execution when output exists", func(st *testing.T) {
		dir := st.TempDir()

		err := os.WriteFile(
			filepath.Join(dir, "acme.ips"),
			[]byte("10.0.0.0/24\n"),
			0644,
		)

		require.NoError(st, err)

		err = os.WriteFile(
			filepath.Join(dir, "scan.acme.json"),
			[]byte("[]"),
			0644,
		)

		require.NoError(st, err)

		// no executor.Run expectation: launching would fail the test
		executor := mock_pipeline.NewMockExecutor(ctrl)

		buf := bytes.NewBuffer([]byte{})

		runner := core.New(
			executor,
			core.WithOutputDir(dir),
			core.WithWriter(buf),
		)

		runner.Initialize(masscan.Params{
			TargetFile: "acme",
			Rate:       "1000",
			Interface:  "eth0",
			Ports:      "80,443",
		})

		err = runner.Run(context.Background())

		assert.NoError(st, err)
		assert.Contains(st, buf.String(), "succeeded")
	})

	t.Run("halts on configuration errors before launching", func(st *testing.T) {
		dir := st.TempDir()

		err := os.WriteFile(
			filepath.Join(dir, "acme.ips"),
			[]byte("10.0.0.0/24\n"),
			0644,
		)

		require.NoError(st, err)

		executor := mock_pipeline.NewMockExecutor(ctrl)

		runner := core.New(
			executor,
			core.WithOutputDir(dir),
			core.WithWriter(bytes.NewBuffer([]byte{})),
		)

		runner.Initialize(masscan.Params{
			TargetFile: "acme",
			Ports:      "80",
			TopPorts:   5,
		})

		err = runner.Run(context.Background())

		assert.ErrorIs(st, err, portspec.ErrConflictingPortSpec)
	})
}

func TestExitCode(t *testing.T) {
	t.Run("maps each violation to a distinct status", func(st *testing.T) {
		assert.Equal(st, 0, core.ExitCode(nil))
		assert.Equal(st, 1, core.ExitCode(portspec.ErrConflictingPortSpec))
		assert.Equal(st, 2, core.ExitCode(portspec.ErrMissingPortSpec))
		assert.Equal(st, 3, core.ExitCode(portspec.ErrInvalidPortCount))
	})

	t.Run("surfaces the external process exit code", func(st *testing.T) {
		procErr := &pipeline.ExternalProcessError{
			ExitCode: 137,
			Err:      errors.New("exit status 137"),
		}

		assert.Equal(st, 137, core.ExitCode(procErr))
	})

	t.Run("falls back to generic failure", func(st *testing.T) {
		assert.Equal(st, 1, core.ExitCode(pipeline.ErrDependencyUnresolved))

		abnormal := &pipeline.ExternalProcessError{
			ExitCode: -1,
			Err:      errors.New("signal: killed"),
		}

		assert.Equal(st, 1, core.ExitCode(abnormal))
	})
}
