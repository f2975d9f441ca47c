package compose

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecRunnerMissingBinary(t *testing.T) {
	r := ExecRunner{}.Run(context.Background(), "stackctl-definitely-not-installed")

	assert.Equal(t, -1, r.Code, "spawn failure must report code -1")
	assert.Empty(t, r.Stdout)
	assert.Empty(t, r.Stderr)
	assert.Error(t, r.Err)
	assert.False(t, r.OK())
}

func TestExecRunnerCapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a unix echo binary")
	}

	r := ExecRunner{}.Run(context.Background(), "echo", "hello")

	assert.Equal(t, 0, r.Code)
	assert.Equal(t, "hello\n", r.Stdout)
	assert.Empty(t, r.Stderr)
	assert.NoError(t, r.Err)
	assert.True(t, r.OK())
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a unix false binary")
	}

	r := ExecRunner{}.Run(context.Background(), "false")

	assert.Equal(t, 1, r.Code)
	assert.Error(t, r.Err)
	assert.False(t, r.OK())
}
