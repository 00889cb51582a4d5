// SPDX-License-Identifier: GPL-3.0-or-later

// Package masscan implements the masscan stage of the recon pipeline as a
// pipeline.Task. The invocation it builds mirrors masscan's CLI grammar
// exactly:
//
//	masscan -v --open --banners --rate 1000 -e eth0 -oJ scan.acme.json --ports 80,443 -iL acme.ips
package masscan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robgonnella/go-masscan/pkg/pipeline"
	"github.com/robgonnella/go-masscan/pkg/portspec"
)

// Executable is the name of the external scanning tool
const Executable = "masscan"

// TargetListKey names the single upstream dependency every masscan task
// declares
const TargetListKey = "target_list"

// Params configure a masscan task. Rate and Interface pass through to the
// scanner verbatim. Exactly one of Ports or TopPorts must be set.
type Params struct {
	// TargetFile is the logical name identifying which target list to
	// depend on and which output file to produce
	TargetFile string
	// Rate is the packet transmission rate in packets per second
	Rate string
	// Interface is the raw network interface to scan from, e.g. "eth0"
	Interface string
	// Ports is an explicit comma-separated port expression, possibly with
	// protocol-prefixed UDP entries like "U:123,161"
	Ports string
	// TopPorts selects the N most popular ports; 0 means unset
	TopPorts int
}

type TaskOption = func(t *Task)

// WithResolver overrides the port spec resolver
func WithResolver(resolver *portspec.Resolver) TaskOption {
	return func(t *Task) {
		t.resolver = resolver
	}
}

// WithDirectory sets the directory the output artifact lives in. Defaults
// to the current working directory.
func WithDirectory(dir string) TaskOption {
	return func(t *Task) {
		t.dir = dir
	}
}

// Task runs masscan against the target list produced by the upstream
// stage for the same target file identifier
type Task struct {
	params    Params
	resolver  *portspec.Resolver
	dir       string
	spec      portspec.Spec
	validated bool
}

// NewTask returns a masscan Task for the given parameters
func NewTask(params Params, opts ...TaskOption) *Task {
	task := &Task{
		params:   params,
		resolver: portspec.NewResolver(nil),
		dir:      ".",
	}

	for _, o := range opts {
		o(task)
	}

	return task
}

// Name identifies this task instance
func (t *Task) Name() string {
	return fmt.Sprintf("%s.%s", Executable, t.params.TargetFile)
}

// Dependencies declares the single upstream target list artifact
func (t *Task) Dependencies() []pipeline.Dependency {
	return []pipeline.Dependency{
		{
			Name:       TargetListKey,
			Identifier: t.params.TargetFile,
		},
	}
}

// Validate resolves the port parameters into a single canonical spec.
// Safe to call more than once; the resolved spec is computed once and
// carried downstream in place of the ambiguous ports/top-ports pair.
func (t *Task) Validate() error {
	if t.validated {
		return nil
	}

	spec, err := t.resolver.Resolve(t.params.Ports, t.params.TopPorts)

	if err != nil {
		return err
	}

	t.spec = spec
	t.validated = true

	return nil
}

// OutputPath returns where the external process writes its findings
func (t *Task) OutputPath() string {
	return filepath.Join(t.dir, OutputPath(t.params.TargetFile))
}

// IsComplete reports whether the output artifact already exists, which is
// the task's entire completion predicate
func (t *Task) IsComplete() bool {
	_, err := os.Stat(t.OutputPath())

	return err == nil
}

// BuildInvocation assembles the full argument vector for the external
// process. The flag grammar must match masscan's CLI byte-for-byte since
// a wrong flag silently changes scan semantics.
func (t *Task) BuildInvocation(inputs map[string]string) ([]string, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	targetList, ok := inputs[TargetListKey]

	if !ok || targetList == "" {
		return nil, errors.New("missing target_list input")
	}

	return []string{
		Executable,
		"-v",
		"--open",
		"--banners",
		"--rate",
		t.params.Rate,
		"-e",
		t.params.Interface,
		"-oJ",
		t.OutputPath(),
		"--ports",
		t.spec.String(),
		"-iL",
		targetList,
	}, nil
}

// OutputPath returns the artifact path for a target file identifier. Pure
// function: equal identifiers always yield equal paths.
func OutputPath(targetFile string) string {
	return fmt.Sprintf("scan.%s.json", targetFile)
}
