package orchestrator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"stackctl/internal/compose"
	"stackctl/internal/config"
	"stackctl/internal/design"
)

// fakeRunner is a scriptable compose.Runner. Every invocation is recorded
// as a single space-joined argv string; runFunc decides the Result, and a
// nil hook reports success with no output.
type fakeRunner struct {
	mu    sync.Mutex
	calls []string

	runFunc func(name string, args []string) compose.Result
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) compose.Result {
	f.mu.Lock()
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	f.mu.Unlock()

	if f.runFunc != nil {
		return f.runFunc(name, args)
	}
	return compose.Result{Code: 0}
}

func (f *fakeRunner) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// callsContaining returns the recorded invocations whose argv contains substr.
func (f *fakeRunner) callsContaining(substr string) []string {
	var matched []string
	for _, call := range f.recorded() {
		if strings.Contains(call, substr) {
			matched = append(matched, call)
		}
	}
	return matched
}

// newTestOrchestrator wires an Orchestrator to runner with colors disabled,
// capturing every diagnostic line in the returned buffer.
func newTestOrchestrator(cfg config.StackConfig, runner *fakeRunner) (*Orchestrator, *bytes.Buffer) {
	out := &bytes.Buffer{}
	client := compose.NewClient(runner, cfg.ComposeFilePath())
	return New(cfg, client, design.NewTheme(true), out), out
}

// defaultTestConfig returns the built-in configuration rooted at dir, so
// file checks resolve inside the test's own tree.
func defaultTestConfig(dir string) config.StackConfig {
	cfg := config.GetDefaultConfig()
	cfg.ProjectRoot = dir
	return cfg
}

// writeRequiredFiles materialises every required file of cfg under its
// project root.
func writeRequiredFiles(t *testing.T, cfg config.StackConfig) {
	t.Helper()
	for _, path := range cfg.RequiredFilePaths() {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
	}
}

// jsonPSLine fabricates one `ps --format json` record.
func jsonPSLine(service, state string) string {
	return `{"Name":"servers-` + service + `-1","Service":"` + service + `","State":"` + state + `","Health":"","ExitCode":0}`
}

// scriptStatus wraps a base hook so status queries return the given outputs
// while every other invocation falls through to base (or plain success).
func scriptStatus(base func(name string, args []string) compose.Result, jsonOut, plainOut string) func(name string, args []string) compose.Result {
	return func(name string, args []string) compose.Result {
		argv := strings.Join(args, " ")
		switch {
		case strings.Contains(argv, "ps --format json"):
			return compose.Result{Code: 0, Stdout: jsonOut}
		case strings.HasSuffix(argv, " ps"):
			return compose.Result{Code: 0, Stdout: plainOut}
		}
		if base != nil {
			return base(name, args)
		}
		return compose.Result{Code: 0}
	}
}
