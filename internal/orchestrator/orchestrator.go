package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"stackctl/internal/compose"
	"stackctl/internal/config"
	"stackctl/internal/design"
	"stackctl/internal/stack"
	"stackctl/pkg/logging"
)

// Orchestrator wraps the compose client with the service registry and the
// display theme. It carries no mutable state; every method rebuilds what it
// needs from the external tool.
type Orchestrator struct {
	registry      *stack.Registry
	client        *compose.Client
	theme         design.Theme
	out           io.Writer
	requiredFiles []string
	logTail       int
}

// New builds an Orchestrator from the loaded configuration. All diagnostic
// output goes to out.
func New(cfg config.StackConfig, client *compose.Client, theme design.Theme, out io.Writer) *Orchestrator {
	tail := cfg.LogTailLines
	if tail <= 0 {
		tail = config.DefaultLogTailLines
	}
	return &Orchestrator{
		registry:      stack.NewRegistry(cfg.Services),
		client:        client,
		theme:         theme,
		out:           out,
		requiredFiles: cfg.RequiredFilePaths(),
		logTail:       tail,
	}
}

// Registry returns the service registry the orchestrator operates on.
func (o *Orchestrator) Registry() *stack.Registry {
	return o.registry
}

// LogTail returns the configured number of trailing log lines.
func (o *Orchestrator) LogTail() int {
	return o.logTail
}

// printf helpers: all operator-facing diagnostics go through the theme so
// the renderer never consults ambient color state.

func (o *Orchestrator) successf(format string, args ...interface{}) {
	fmt.Fprintln(o.out, o.theme.Success.Render(design.IconText(design.IconCheck, fmt.Sprintf(format, args...))))
}

func (o *Orchestrator) failf(format string, args ...interface{}) {
	fmt.Fprintln(o.out, o.theme.Error.Render(design.IconText(design.IconCross, fmt.Sprintf(format, args...))))
}

func (o *Orchestrator) warnf(format string, args ...interface{}) {
	fmt.Fprintln(o.out, o.theme.Warning.Render(design.IconText(design.IconWarning, fmt.Sprintf(format, args...))))
}

func (o *Orchestrator) infof(icon string, format string, args ...interface{}) {
	fmt.Fprintln(o.out, o.theme.Info.Render(design.IconText(icon, fmt.Sprintf(format, args...))))
}

// stderrDiag surfaces the captured stderr of a failed invocation, if any.
func (o *Orchestrator) stderrDiag(res compose.Result) {
	if res.Stderr != "" {
		fmt.Fprintln(o.out, o.theme.Muted.Render(fmt.Sprintf("error: %s", res.Stderr)))
	}
}

// CheckDockerAvailable verifies the docker binary is installed and its
// daemon is reachable via two independent probes. It returns false on either
// probe failing and never raises.
func (o *Orchestrator) CheckDockerAvailable(ctx context.Context) bool {
	o.infof(design.IconSearch, "checking docker installation..")

	if res := o.client.DockerVersion(ctx); !res.OK() {
		o.failf("docker is not installed")
		return false
	}
	o.successf("docker installed")

	if res := o.client.DockerInfo(ctx); !res.OK() {
		o.failf("docker daemon is not running")
		return false
	}
	o.successf("docker daemon reachable")
	return true
}

// CheckManifestPresent verifies the compose manifest file exists.
func (o *Orchestrator) CheckManifestPresent() bool {
	file := o.client.File()
	if _, err := os.Stat(file); err != nil {
		o.failf("compose manifest not found: %s", file)
		return false
	}
	o.successf("compose manifest found: %s", file)
	return true
}

// Preflight is the only fatal path in the tool: it returns an error when the
// docker tooling is unreachable or the compose manifest is missing. The CLI
// layer turns that error into a non-zero process exit before any workflow
// runs.
func (o *Orchestrator) Preflight(ctx context.Context) error {
	if !o.CheckDockerAvailable(ctx) {
		return fmt.Errorf("docker is not available; start the docker daemon and retry")
	}
	if !o.CheckManifestPresent() {
		return fmt.Errorf("compose manifest not found at %s", o.client.File())
	}
	return nil
}

// validKey rejects operations on keys outside the registry before anything
// is shelled out. An empty key always passes: it addresses all services.
func (o *Orchestrator) validKey(key string) bool {
	if key == "" || o.registry.Has(key) {
		return true
	}
	o.failf("unknown service: %s", key)
	return false
}

// Build builds one service, or all services when key is empty. Success iff
// the external command exits zero.
func (o *Orchestrator) Build(ctx context.Context, key string) bool {
	if !o.validKey(key) {
		return false
	}
	o.infof(design.IconBuild, "building %s..", orAll(key))
	res := o.client.Build(ctx, key)
	if !res.OK() {
		o.failf("%s build failed", orAll(key))
		o.stderrDiag(res)
		return false
	}
	o.successf("%s build complete", orAll(key))
	return true
}

// Start runs one service detached, or all services when key is empty.
func (o *Orchestrator) Start(ctx context.Context, key string) bool {
	if !o.validKey(key) {
		return false
	}
	o.infof(design.IconLaunch, "starting %s..", orAll(key))
	res := o.client.Up(ctx, key)
	if !res.OK() {
		o.failf("%s start failed", orAll(key))
		o.stderrDiag(res)
		return false
	}
	o.successf("%s started", orAll(key))
	return true
}

// Stop stops one service, or all services when key is empty. Stopping an
// already-stopped service still succeeds when the tool reports exit zero.
func (o *Orchestrator) Stop(ctx context.Context, key string) bool {
	if !o.validKey(key) {
		return false
	}
	o.infof(design.IconStop, "stopping %s..", orAll(key))
	res := o.client.Stop(ctx, key)
	if !res.OK() {
		o.failf("%s stop failed", orAll(key))
		o.stderrDiag(res)
		return false
	}
	o.successf("%s stopped", orAll(key))
	return true
}

// Remove force-removes one service's containers, or all when key is empty.
func (o *Orchestrator) Remove(ctx context.Context, key string) bool {
	if !o.validKey(key) {
		return false
	}
	o.infof(design.IconTrash, "removing %s..", orAll(key))
	res := o.client.Remove(ctx, key)
	if !res.OK() {
		o.failf("%s remove failed", orAll(key))
		o.stderrDiag(res)
		return false
	}
	o.successf("%s removed", orAll(key))
	return true
}

// VerifyEnvironment runs the pre-build checks: every required file must
// exist and the compose manifest must validate. It short-circuits on the
// first missing file and is mandatory before any bring-up workflow.
func (o *Orchestrator) VerifyEnvironment(ctx context.Context) bool {
	o.infof(design.IconTest, "running basic environment checks..")

	o.infof(design.IconFolder, "checking required files..")
	for _, path := range o.requiredFiles {
		name := filepath.Base(path)
		if _, err := os.Stat(path); err != nil {
			o.failf("%s missing", name)
			return false
		}
		o.successf("%s present", name)
	}

	o.infof(design.IconSearch, "validating compose manifest..")
	res := o.client.Validate(ctx)
	if !res.OK() {
		o.failf("compose manifest validation failed")
		o.stderrDiag(res)
		return false
	}
	o.successf("compose manifest valid")
	return true
}

// ShowLogs prints the last LogTail lines of logs for one service, or for
// all services when key is empty. The captured text is returned so callers
// can reuse it (e.g. for clipboard copy); ok is false when the invocation
// failed.
func (o *Orchestrator) ShowLogs(ctx context.Context, key string) (logText string, ok bool) {
	if !o.validKey(key) {
		return "", false
	}
	if key == "" {
		o.infof(design.IconList, "logs for all services:")
	} else {
		o.infof(design.IconList, "logs for %s:", key)
	}

	res := o.client.Logs(ctx, key, o.logTail)
	if !res.OK() {
		o.failf("could not fetch logs")
		o.stderrDiag(res)
		return "", false
	}
	fmt.Fprint(o.out, res.Stdout)
	logging.Debug("orchestrator", "fetched %d bytes of logs for %q", len(res.Stdout), key)
	return res.Stdout, true
}

// orAll names the target of an operation for diagnostics.
func orAll(key string) string {
	if key == "" {
		return "all services"
	}
	return key
}
