package orchestrator

import (
	"context"

	"stackctl/internal/design"
)

// UpAll brings the whole stack up: environment checks, build, start, then a
// best-effort service check. The workflow aborts on the first failed step;
// only the post-start check is advisory and cannot change the result.
func (o *Orchestrator) UpAll(ctx context.Context) bool {
	o.infof(design.IconLaunch, "bringing up all services..")

	if !o.VerifyEnvironment(ctx) {
		o.failf("environment checks failed - aborting")
		return false
	}
	if !o.Build(ctx, "") {
		o.failf("build failed - aborting")
		return false
	}
	if !o.Start(ctx, "") {
		o.failf("start failed - aborting")
		return false
	}

	if !o.CheckServices(ctx) {
		o.warnf("some service checks failed - inspect the logs")
	}

	o.successf("all services are up")
	return true
}

// UpOne brings a single registered service up with the same sequence as
// UpAll. The key is validated against the registry before anything runs.
func (o *Orchestrator) UpOne(ctx context.Context, key string) bool {
	def, ok := o.registry.Definition(key)
	if !ok {
		o.failf("unknown service: %s", key)
		return false
	}
	o.infof(design.IconLaunch, "bringing up %s..", def.DisplayName)

	if !o.VerifyEnvironment(ctx) {
		o.failf("environment checks failed - aborting")
		return false
	}
	if !o.Build(ctx, key) {
		return false
	}
	if !o.Start(ctx, key) {
		return false
	}

	if !o.CheckServices(ctx) {
		o.warnf("some service checks failed - inspect the logs")
	}
	return true
}

// TearDownAll stops and removes every container of the stack, orphans
// included.
func (o *Orchestrator) TearDownAll(ctx context.Context) bool {
	o.infof(design.IconStop, "stopping all services..")

	res := o.client.Down(ctx)
	if !res.OK() {
		o.failf("stopping services failed")
		o.stderrDiag(res)
		return false
	}
	o.successf("all services stopped")
	return true
}
