package orchestrator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackctl/internal/compose"
)

func TestUpAllAbortsWhenEnvironmentChecksFail(t *testing.T) {
	runner := &fakeRunner{}
	// Empty project root: the first required file is already missing.
	orch, out := newTestOrchestrator(defaultTestConfig(t.TempDir()), runner)

	ok := orch.UpAll(context.Background())

	assert.False(t, ok)
	assert.Contains(t, out.String(), "environment checks failed - aborting")
	assert.Empty(t, runner.callsContaining(" build"))
	assert.Empty(t, runner.callsContaining(" up -d"))
}

func TestUpAllRunsTheFullSequence(t *testing.T) {
	cfg := defaultTestConfig(t.TempDir())
	writeRequiredFiles(t, cfg)
	runner := &fakeRunner{
		runFunc: scriptStatus(nil, "", ""),
	}
	orch, out := newTestOrchestrator(cfg, runner)

	ok := orch.UpAll(context.Background())

	assert.True(t, ok)

	calls := runner.recorded()
	require.Len(t, calls, 5)
	assert.True(t, strings.HasSuffix(calls[0], " config"), "got %s", calls[0])
	assert.True(t, strings.HasSuffix(calls[1], " build"), "got %s", calls[1])
	assert.True(t, strings.HasSuffix(calls[2], " up -d"), "got %s", calls[2])
	assert.Contains(t, calls[3], "ps --format json")
	assert.True(t, strings.HasSuffix(calls[4], " ps"), "got %s", calls[4])

	// Nothing was reported running, so the advisory check warns without
	// changing the outcome.
	assert.Contains(t, out.String(), "some service checks failed - inspect the logs")
	assert.Contains(t, out.String(), "all services are up")
}

func TestUpOneRejectsUnknownService(t *testing.T) {
	runner := &fakeRunner{}
	orch, out := newTestOrchestrator(defaultTestConfig(t.TempDir()), runner)

	ok := orch.UpOne(context.Background(), "ghost")

	assert.False(t, ok)
	assert.Empty(t, runner.recorded())
	assert.Contains(t, out.String(), "unknown service: ghost")
}

func TestUpOneBuildsAndStartsJustThatService(t *testing.T) {
	cfg := defaultTestConfig(t.TempDir())
	writeRequiredFiles(t, cfg)
	runner := &fakeRunner{
		runFunc: scriptStatus(nil, "", ""),
	}
	orch, out := newTestOrchestrator(cfg, runner)

	ok := orch.UpOne(context.Background(), "api-server")

	assert.True(t, ok)
	assert.Contains(t, out.String(), "bringing up API Server (FastAPI)")

	calls := runner.recorded()
	require.Len(t, calls, 5)
	assert.True(t, strings.HasSuffix(calls[1], " build api-server"), "got %s", calls[1])
	assert.True(t, strings.HasSuffix(calls[2], " up -d api-server"), "got %s", calls[2])
}

func TestUpOneAbortsWhenBuildFails(t *testing.T) {
	cfg := defaultTestConfig(t.TempDir())
	writeRequiredFiles(t, cfg)
	runner := &fakeRunner{
		runFunc: func(name string, args []string) compose.Result {
			for _, arg := range args {
				if arg == "build" {
					return compose.Result{Code: 17, Stderr: "failed to compute cache key"}
				}
			}
			return compose.Result{Code: 0}
		},
	}
	orch, out := newTestOrchestrator(cfg, runner)

	ok := orch.UpOne(context.Background(), "api-server")

	assert.False(t, ok)
	assert.Contains(t, out.String(), "api-server build failed")
	assert.Contains(t, out.String(), "error: failed to compute cache key")
	assert.Empty(t, runner.callsContaining(" up -d"))
}

func TestTearDownAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		runner := &fakeRunner{}
		orch, out := newTestOrchestrator(defaultTestConfig(t.TempDir()), runner)

		ok := orch.TearDownAll(context.Background())

		assert.True(t, ok)
		require.Len(t, runner.recorded(), 1)
		assert.True(t, strings.HasSuffix(runner.recorded()[0], " down --remove-orphans"), "got %s", runner.recorded()[0])
		assert.Contains(t, out.String(), "all services stopped")
	})

	t.Run("failure", func(t *testing.T) {
		runner := &fakeRunner{
			runFunc: func(name string, args []string) compose.Result {
				return compose.Result{Code: 1, Stderr: "network servers_default is in use"}
			},
		}
		orch, out := newTestOrchestrator(defaultTestConfig(t.TempDir()), runner)

		ok := orch.TearDownAll(context.Background())

		assert.False(t, ok)
		assert.Contains(t, out.String(), "stopping services failed")
		assert.Contains(t, out.String(), "error: network servers_default is in use")
	})
}
