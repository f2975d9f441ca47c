package orchestrator

import (
	"context"
	"strings"
	"time"

	"stackctl/internal/cli"
	"stackctl/internal/compose"
	"stackctl/internal/design"
	"stackctl/internal/netutil"
	"stackctl/internal/stack"
	"stackctl/pkg/logging"
)

// portProbeTimeout bounds each diagnostic TCP connect. It is the only
// timeout in the tool; compose invocations block until the process exits.
const portProbeTimeout = time.Second

// probeHost is where the diagnostic port probes connect.
const probeHost = "localhost"

// statusStrategy pairs one compose status invocation with the parser for its
// output format.
type statusStrategy struct {
	name  string
	fetch func(ctx context.Context) compose.Result
	parse stack.ParseFunc
}

// statusStrategies is the ordered status-query chain: structured JSON is
// preferred, tabular text is the fallback.
func (o *Orchestrator) statusStrategies() []statusStrategy {
	return []statusStrategy{
		{name: "json", fetch: o.client.PSJSON, parse: stack.ParseJSON},
		{name: "plain", fetch: o.client.PS, parse: stack.ParsePlain},
	}
}

// QueryStatus builds a fresh Status map from the external orchestrator.
// Strategies are tried in order and the first non-empty result wins; when
// every strategy comes up empty (command failed, nothing running, output
// unparseable) the result is an empty map, never nil semantics beyond that.
func (o *Orchestrator) QueryStatus(ctx context.Context) stack.Status {
	o.infof(design.IconSearch, "querying service status..")

	for _, strategy := range o.statusStrategies() {
		res := strategy.fetch(ctx)
		if !res.OK() || strings.TrimSpace(res.Stdout) == "" {
			logging.Debug("orchestrator", "status strategy %s yielded no output (code %d)", strategy.name, res.Code)
			continue
		}
		if status := strategy.parse(o.registry, res.Stdout); len(status) > 0 {
			logging.Debug("orchestrator", "status strategy %s reported %d services", strategy.name, len(status))
			return status
		}
	}
	return stack.Status{}
}

// DisplayStatus renders the status of every registered service, each exactly
// once in registry order. Services the orchestrator did not report render as
// stopped.
func (o *Orchestrator) DisplayStatus(ctx context.Context) {
	status := o.QueryStatus(ctx)
	o.infof(design.IconList, "service status:")
	cli.RenderStatusTable(o.out, o.registry, status, o.theme)
}

// CheckServices verifies every registered service is reported running. When
// one is down the check fails immediately and no ports are probed. When all
// are up, each configured host port gets a best-effort TCP connect whose
// outcome is reported but never fails the check: ports are diagnostic only.
func (o *Orchestrator) CheckServices(ctx context.Context) bool {
	o.infof(design.IconTest, "checking services..")
	status := o.QueryStatus(ctx)

	allRunning := true
	for _, key := range o.registry.Keys() {
		if state, ok := status[key]; ok && stack.Running(state) {
			o.successf("%s running", key)
		} else {
			o.failf("%s not running", key)
			allRunning = false
		}
	}
	if !allRunning {
		o.failf("some services are not running")
		return false
	}

	o.infof(design.IconSearch, "probing service ports..")
	probes := make([]cli.PortProbe, 0, o.registry.Len())
	for _, def := range o.registry.Definitions() {
		if def.HostPort == 0 {
			continue
		}
		err := netutil.ProbeTCP(probeHost, def.HostPort, portProbeTimeout)
		if err != nil {
			logging.Warn("orchestrator", "port %d (%s) not reachable: %v", def.HostPort, def.Key, err)
		}
		probes = append(probes, cli.PortProbe{
			Key:         def.Key,
			DisplayName: def.DisplayName,
			Port:        def.HostPort,
			Err:         err,
		})
	}
	cli.RenderPortCheck(o.out, probes, o.theme)

	o.successf("service check complete")
	return true
}
