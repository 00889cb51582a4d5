// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileTargetProvider resolves target list dependencies to files on disk
// named <identifier>.ips, one IP or CIDR per line, produced by the
// upstream target list stage
type FileTargetProvider struct {
	dir string
}

// NewFileTargetProvider returns a provider rooted at dir. An empty dir
// resolves against the current working directory.
func NewFileTargetProvider(dir string) *FileTargetProvider {
	if dir == "" {
		dir = "."
	}

	return &FileTargetProvider{dir: dir}
}

// Resolve returns the path of the target list artifact for dep. A missing
// file is reported as ErrDependencyUnresolved so the scheduler can decide
// retry policy.
func (p *FileTargetProvider) Resolve(dep Dependency) (string, error) {
	path := filepath.Join(p.dir, fmt.Sprintf("%s.ips", dep.Identifier))

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrDependencyUnresolved, path)
	} else if err != nil {
		return "", err
	}

	return path, nil
}
