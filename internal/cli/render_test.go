package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stackctl/internal/config"
	"stackctl/internal/design"
	"stackctl/internal/stack"
)

func renderToString(st stack.Status) string {
	var buf bytes.Buffer
	reg := stack.NewRegistry(config.DefaultServices())
	RenderStatusTable(&buf, reg, st, design.NewTheme(true))
	return buf.String()
}

func TestRenderStatusTableListsEveryServiceOnce(t *testing.T) {
	out := renderToString(stack.Status{})

	for _, key := range []string{"page-server", "api-server", "db-server", "nginx", "redis"} {
		assert.Equal(t, 1, strings.Count(out, key), "service %s must appear exactly once", key)
	}
	for _, name := range []string{"Page Server (Next.js)", "Redis (Cache)"} {
		assert.Contains(t, out, name)
	}
}

func TestRenderStatusTableAbsentRendersStopped(t *testing.T) {
	out := renderToString(stack.Status{})

	assert.Equal(t, 5, strings.Count(out, "stopped"))
	assert.NotContains(t, out, "running")
}

func TestRenderStatusTableRunningStates(t *testing.T) {
	out := renderToString(stack.Status{
		"page-server": "Up 5 minutes",
		"api-server":  "running",
		"db-server":   "Exited (1)",
	})

	assert.Equal(t, 2, strings.Count(out, "running"))
	// db-server reported Exited and the two unreported services all render
	// as stopped, indistinguishably.
	assert.Equal(t, 3, strings.Count(out, "stopped"))
}

func TestRenderStatusTableRegistryOrder(t *testing.T) {
	out := renderToString(stack.Status{})

	idx := func(s string) int { return strings.Index(out, s) }
	assert.Less(t, idx("page-server"), idx("api-server"))
	assert.Less(t, idx("api-server"), idx("db-server"))
	assert.Less(t, idx("db-server"), idx("nginx"))
	assert.Less(t, idx("nginx"), idx("redis"))
}

func TestRenderPortCheck(t *testing.T) {
	var buf bytes.Buffer
	probes := []PortProbe{
		{Key: "nginx", DisplayName: "Nginx (Reverse Proxy)", Port: 80},
		{Key: "redis", DisplayName: "Redis (Cache)", Port: 16379, Err: errors.New("connection refused")},
	}

	RenderPortCheck(&buf, probes, design.NewTheme(true))
	out := buf.String()

	assert.Contains(t, out, "80")
	assert.Contains(t, out, "16379")
	assert.Contains(t, out, "open")
	assert.Contains(t, out, "closed")
}

func TestRenderPortCheckEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderPortCheck(&buf, nil, design.NewTheme(true))
	assert.Empty(t, buf.String())
}
