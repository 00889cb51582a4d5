// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robgonnella/go-masscan/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTargetProvider(t *testing.T) {
	dep := pipeline.Dependency{
		Name:       "target_list",
		Identifier: "acme",
	}

	t.Run("resolves existing target list", func(st *testing.T) {
		dir := st.TempDir()
		expected := filepath.Join(dir, "acme.ips")

		err := os.WriteFile(expected, []byte("10.0.0.0/24\n"), 0644)

		require.NoError(st, err)

		provider := pipeline.NewFileTargetProvider(dir)

		path, err := provider.Resolve(dep)

		assert.NoError(st, err)
		assert.Equal(st, expected, path)
	})

	t.Run("reports unresolved dependency when file is missing", func(st *testing.T) {
		provider := pipeline.NewFileTargetProvider(st.TempDir())

		_, err := provider.Resolve(dep)

		assert.ErrorIs(st, err, pipeline.ErrDependencyUnresolved)
	})
}
