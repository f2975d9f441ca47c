package stack

import (
	"encoding/json"
	"strings"
)

// Status maps service keys to the raw state string the orchestrator reported
// ("Up", "running", "Exited", ...). It is rebuilt on every query and never
// cached. A key absent from the map means the orchestrator did not report the
// service, which renders as stopped.
type Status map[string]string

// Running reports whether a raw state string describes a running service.
// The match is case-insensitive and substring-based, covering the "Up",
// "running" and "started" spellings different compose versions emit.
func Running(state string) bool {
	s := strings.ToLower(state)
	for _, marker := range []string{"up", "running", "started"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// ParseFunc turns raw `docker compose ps` output into a Status map. Parsers
// are applied in a fixed order by the orchestrator; the first that yields a
// non-empty map wins.
type ParseFunc func(reg *Registry, output string) Status

// psContainer is the subset of the `docker compose ps --format json` record
// the status query consumes.
type psContainer struct {
	Name     string `json:"Name"`
	Service  string `json:"Service"`
	State    string `json:"State"`
	Health   string `json:"Health"`
	ExitCode int    `json:"ExitCode"`
}

// ParseJSON parses structured `docker compose ps --format json` output.
// Newer compose releases emit one JSON object per line, older ones a single
// JSON array; both are accepted, and each line is parsed independently so a
// malformed line is skipped without discarding the rest.
func ParseJSON(reg *Registry, output string) Status {
	status := Status{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			var containers []psContainer
			if err := json.Unmarshal([]byte(line), &containers); err != nil {
				continue
			}
			for _, c := range containers {
				recordContainer(status, c)
			}
			continue
		}
		var c psContainer
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			continue
		}
		recordContainer(status, c)
	}
	return status
}

func recordContainer(status Status, c psContainer) {
	if c.Service == "" {
		return
	}
	status[c.Service] = c.State
}

// ParsePlain parses tabular `docker compose ps` output, the fallback when
// structured output is unavailable. The header line is skipped; for every
// remaining line the first whitespace-separated token is the container name,
// and the presence of an "Up"/"Running"/"Started" marker anywhere in the line
// marks that container's service as up. Container names are translated to
// service keys through the registry, or kept verbatim when unknown.
func ParsePlain(reg *Registry, output string) Status {
	status := Status{}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) <= 1 {
		return status
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if !hasRunningMarker(line) {
			continue
		}
		key := reg.ResolveContainer(fields[0])
		status[key] = "Up"
	}
	return status
}

// hasRunningMarker checks for the literal state words compose prints in
// tabular output. Deliberately case-sensitive: these are column values, not
// free text.
func hasRunningMarker(line string) bool {
	for _, marker := range []string{"Up", "Running", "Started"} {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
