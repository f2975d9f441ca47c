package compose

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"stackctl/pkg/logging"
)

// Result is the outcome of one external command invocation. All fields are
// always populated: a spawn failure (binary not found, permission denied)
// yields Code -1 with empty captured output, a non-zero exit stores the
// process exit code.
type Result struct {
	Code   int
	Stdout string
	Stderr string
	Err    error
}

// OK reports whether the command exited with status zero.
func (r Result) OK() bool {
	return r.Code == 0
}

// Runner executes external commands. The production implementation is
// ExecRunner; tests substitute a fake that returns scripted Results.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// ExecRunner runs commands via os/exec, blocking until the process exits and
// capturing stdout and stderr separately.
type ExecRunner struct{}

// Run executes name with args. It never returns a partially populated Result.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	logging.Debug("exec", "+ %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	runErr := cmd.Run()

	result := Result{
		Code:   0,
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
		Err:    runErr,
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.Code = exitErr.ExitCode()
		} else {
			// Spawn failure: executable missing, context cancelled, etc.
			result.Code = -1
		}
	}
	return result
}
