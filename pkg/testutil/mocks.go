package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/svn"
	"github.com/arthur-debert/svnext/pkg/types"
)

// Call is one recorded command invocation
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Subcommand returns the first argument, e.g. "propget"
func (c Call) Subcommand() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// String renders the call as a command line
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// MockRunner is a mock implementation of svn.Runner for testing.
// Responses are keyed by subcommand; Failures make that subcommand exit
// non-zero.
type MockRunner struct {
	RunFunc   func(ctx context.Context, dir, name string, args ...string) (svn.Output, error)
	Responses map[string]svn.Output
	Failures  map[string]string

	mu    sync.Mutex
	calls []Call
}

// NewMockRunner creates a runner whose commands all succeed silently
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Responses: make(map[string]svn.Output),
		Failures:  make(map[string]string),
	}
}

// Respond sets the stdout returned for a subcommand
func (m *MockRunner) Respond(subcommand, stdout string) *MockRunner {
	m.Responses[subcommand] = svn.Output{Stdout: stdout}
	return m
}

// Fail makes a subcommand exit 1 with stderr
func (m *MockRunner) Fail(subcommand, stderr string) *MockRunner {
	m.Failures[subcommand] = stderr
	return m
}

// Run records the call and answers it
func (m *MockRunner) Run(ctx context.Context, dir, name string, args ...string) (svn.Output, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Dir: dir, Name: name, Args: append([]string(nil), args...)})
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, dir, name, args...)
	}

	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	if stderr, ok := m.Failures[sub]; ok {
		out := svn.Output{Stderr: stderr, ExitCode: 1}
		return out, errors.Newf(errors.ErrToolInvocation, "%s %s failed", name, sub).
			WithDetail("stderr", stderr).
			WithDetail("exitCode", 1)
	}
	return m.Responses[sub], nil
}

// Calls returns the recorded calls in order
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// Subcommands returns the subcommand of every recorded call
func (m *MockRunner) Subcommands() []string {
	var out []string
	for _, c := range m.Calls() {
		out = append(out, c.Subcommand())
	}
	return out
}

// MockMetadataSource serves projects keyed by Coordinate.Key()
type MockMetadataSource struct {
	Projects map[string]*types.Project
	Lookups  []types.Coordinate
}

// NewMockMetadataSource creates an empty metadata source
func NewMockMetadataSource() *MockMetadataSource {
	return &MockMetadataSource{Projects: make(map[string]*types.Project)}
}

// WithScm registers a project publishing url as its SCM location. An empty
// url registers an <scm> section without a URL.
func (m *MockMetadataSource) WithScm(coord, url string) *MockMetadataSource {
	c := MustCoordinate(coord)
	m.Projects[c.Key()] = &types.Project{Coordinate: c, Scm: &types.Scm{URL: url}}
	return m
}

// WithoutScm registers a project that declares no source control
func (m *MockMetadataSource) WithoutScm(coord string) *MockMetadataSource {
	c := MustCoordinate(coord)
	m.Projects[c.Key()] = &types.Project{Coordinate: c}
	return m
}

// Project implements the resolver's metadata source
func (m *MockMetadataSource) Project(_ context.Context, c types.Coordinate) (*types.Project, error) {
	m.Lookups = append(m.Lookups, c)
	p, ok := m.Projects[c.Key()]
	if !ok {
		return nil, errors.Newf(errors.ErrMetadataLookup, "no metadata for %s", c)
	}
	return p, nil
}

// MustCoordinate parses a coordinate or panics
func MustCoordinate(s string) types.Coordinate {
	c, err := types.ParseCoordinate(s)
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return c
}

// Declare builds a declaration for coord bound to path
func Declare(coord, path string) types.Declaration {
	c := MustCoordinate(coord)
	return types.Declaration{Dependency: &c, Path: path}
}
