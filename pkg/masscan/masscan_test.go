// SPDX-License-Identifier: GPL-3.0-or-later

package masscan_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_ports "github.com/robgonnella/go-masscan/mock/ports"
	"github.com/robgonnella/go-masscan/pkg/masscan"
	"github.com/robgonnella/go-masscan/pkg/pipeline"
	"github.com/robgonnella/go-masscan/pkg/ports"
	"github.com/robgonnella/go-masscan/pkg/portspec"
)

func TestOutputPath(t *testing.T) {
	t.Run("derives path from target file identifier", func(st *testing.T) {
		assert.Equal(st, "scan.acme.json", masscan.OutputPath("acme"))
	})

	t.Run("is deterministic", func(st *testing.T) {
		assert.Equal(st, masscan.OutputPath("acme"), masscan.OutputPath("acme"))
		assert.NotEqual(st, masscan.OutputPath("acme"), masscan.OutputPath("tesla"))
	})
}

func TestTaskDependencies(t *testing.T) {
	task := masscan.NewTask(masscan.Params{
		TargetFile: "acme",
		Rate:       "1000",
		Interface:  "eth0",
		Ports:      "80,443",
	})

	t.Run("declares a single target list dependency", func(st *testing.T) {
		deps := task.Dependencies()

		require.Len(st, deps, 1)
		assert.Equal(st, pipeline.Dependency{
			Name:       masscan.TargetListKey,
			Identifier: "acme",
		}, deps[0])
	})
}

func TestTaskValidate(t *testing.T) {
	t.Run("rejects conflicting port parameters", func(st *testing.T) {
		task := masscan.NewTask(masscan.Params{
			TargetFile: "acme",
			Ports:      "80",
			TopPorts:   5,
		})

		assert.ErrorIs(st, task.Validate(), portspec.ErrConflictingPortSpec)
	})

	t.Run("rejects missing port parameters", func(st *testing.T) {
		task := masscan.NewTask(masscan.Params{TargetFile: "acme"})

		assert.ErrorIs(st, task.Validate(), portspec.ErrMissingPortSpec)
	})

	t.Run("rejects negative top ports", func(st *testing.T) {
		task := masscan.NewTask(masscan.Params{
			TargetFile: "acme",
			TopPorts:   -1,
		})

		assert.ErrorIs(st, task.Validate(), portspec.ErrInvalidPortCount)
	})
}

func TestTaskIsComplete(t *testing.T) {
	dir := t.TempDir()

	task := masscan.NewTask(
		masscan.Params{
			TargetFile: "acme",
			Ports:      "80",
		},
		masscan.WithDirectory(dir),
	)

	t.Run("reports incomplete before output exists", func(st *testing.T) {
		assert.False(st, task.IsComplete())
	})

	t.Run("reports complete once output exists", func(st *testing.T) {
		err := os.WriteFile(task.OutputPath(), []byte("{}"), 0644)

		require.NoError(st, err)
		assert.True(st, task.IsComplete())
		assert.Equal(st, filepath.Join(dir, "scan.acme.json"), task.OutputPath())
	})
}

func TestBuildInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	inputs := map[string]string{
		masscan.TargetListKey: "acme.ips",
	}

	t.Run("builds full argument vector with explicit ports", func(st *testing.T) {
		task := masscan.NewTask(masscan.Params{
			TargetFile: "acme",
			Rate:       "1000",
			Interface:  "eth0",
			Ports:      "80,443",
		})

		argv, err := task.BuildInvocation(inputs)

		require.NoError(st, err)

		assert.Equal(st, []string{
			"masscan",
			"-v",
			"--open",
			"--banners",
			"--rate",
			"1000",
			"-e",
			"eth0",
			"-oJ",
			"scan.acme.json",
			"--ports",
			"80,443",
			"-iL",
			"acme.ips",
		}, argv)
	})

	t.Run("expands top ports through the catalog", func(st *testing.T) {
		catalog := mock_ports.NewMockCatalog(ctrl)

		catalog.EXPECT().
			FirstN(ports.TCP, 3).
			Return([]uint16{80, 443, 22})

		catalog.EXPECT().
			FirstN(ports.UDP, 3).
			Return([]uint16{53, 161, 123})

		task := masscan.NewTask(
			masscan.Params{
				TargetFile: "acme",
				Rate:       "1000",
				Interface:  "eth0",
				TopPorts:   3,
			},
			masscan.WithResolver(portspec.NewResolver(catalog)),
		)

		argv, err := task.BuildInvocation(inputs)

		require.NoError(st, err)

		idx := slices.Index(argv, "--ports")

		require.NotEqual(st, -1, idx)
		assert.Equal(st, "80,443,22,U:53,161,123", argv[idx+1])
	})

	t.Run("is deterministic", func(st *testing.T) {
		task := masscan.NewTask(masscan.Params{
			TargetFile: "acme",
			Rate:       "1000",
			Interface:  "eth0",
			Ports:      "80,443",
		})

		argv1, err := task.BuildInvocation(inputs)

		require.NoError(st, err)

		argv2, err := task.BuildInvocation(inputs)

		require.NoError(st, err)
		assert.Equal(st, argv1, argv2)
	})

	t.Run("follows every value flag with exactly one value", func(st *testing.T) {
		task := masscan.NewTask(masscan.Params{
			TargetFile: "acme",
			Rate:       "1000",
			Interface:  "eth0",
			Ports:      "80,443",
		})

		argv, err := task.BuildInvocation(inputs)

		require.NoError(st, err)

		valueFlags := []string{"--rate", "-e", "-oJ", "--ports", "-iL"}

		for _, flag := range valueFlags {
			idx := slices.Index(argv, flag)

			require.NotEqual(st, -1, idx, flag)
			require.Less(st, idx+1, len(argv), flag)
			assert.NotEmpty(st, argv[idx+1], flag)
			assert.NotContains(st, argv[idx+1], "--", flag)
		}
	})

	t.Run("surfaces port spec errors before building", func(st *testing.T) {
		task := masscan.NewTask(masscan.Params{
			TargetFile: "acme",
			Ports:      "80",
			TopPorts:   5,
		})

		_, err := task.BuildInvocation(inputs)

		assert.ErrorIs(st, err, portspec.ErrConflictingPortSpec)
	})

	t.Run("errors when target list input is missing", func(st *testing.T) {
		task := masscan.NewTask(masscan.Params{
			TargetFile: "acme",
			Ports:      "80",
		})

		_, err := task.BuildInvocation(map[string]string{})

		assert.Error(st, err)
	})
}
