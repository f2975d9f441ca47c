// Package orchestrator is the single point of contact with the external
// Docker Compose tooling. It exposes build/start/stop/remove/status/logs
// operations over the fixed service registry plus the higher-level bring-up
// and tear-down workflows.
//
// Every operation is synchronous and stateless: one blocking subprocess at a
// time, no retries, no caching. The external orchestrator's own container
// states are the only state, queried on demand. Command failures are
// converted to boolean results with a printed diagnostic; the only error
// that escapes to the caller is the pre-flight check, which the CLI layer
// translates into a non-zero process exit.
package orchestrator
