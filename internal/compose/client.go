package compose

import (
	"context"
	"fmt"
)

// Client binds a compose manifest path to a Runner and exposes the compose
// subcommands stackctl consumes. Every method blocks until the external
// process exits; no internal timeouts are imposed.
type Client struct {
	runner Runner
	file   string
}

// NewClient returns a Client invoking `docker compose -f file` through runner.
func NewClient(runner Runner, file string) *Client {
	return &Client{runner: runner, file: file}
}

// File returns the compose manifest path this client operates on.
func (c *Client) File() string {
	return c.file
}

// compose invokes a `docker compose -f FILE ...` subcommand.
func (c *Client) compose(ctx context.Context, args ...string) Result {
	argv := append([]string{"compose", "-f", c.file}, args...)
	return c.runner.Run(ctx, "docker", argv...)
}

// appendService appends service to args unless it is empty; an empty service
// means "all services" for every compose subcommand that takes one.
func appendService(args []string, service string) []string {
	if service == "" {
		return args
	}
	return append(args, service)
}

// Build runs `docker compose build [service]`.
func (c *Client) Build(ctx context.Context, service string) Result {
	return c.compose(ctx, appendService([]string{"build"}, service)...)
}

// Up runs `docker compose up -d [service]`.
func (c *Client) Up(ctx context.Context, service string) Result {
	return c.compose(ctx, appendService([]string{"up", "-d"}, service)...)
}

// Stop runs `docker compose stop [service]`.
func (c *Client) Stop(ctx context.Context, service string) Result {
	return c.compose(ctx, appendService([]string{"stop"}, service)...)
}

// Remove runs `docker compose rm -f [service]`.
func (c *Client) Remove(ctx context.Context, service string) Result {
	return c.compose(ctx, appendService([]string{"rm", "-f"}, service)...)
}

// Down runs `docker compose down --remove-orphans`, stopping and removing
// every container of the stack including orphans.
func (c *Client) Down(ctx context.Context) Result {
	return c.compose(ctx, "down", "--remove-orphans")
}

// PSJSON runs `docker compose ps --format json`, the structured status query.
func (c *Client) PSJSON(ctx context.Context) Result {
	return c.compose(ctx, "ps", "--format", "json")
}

// PS runs plain `docker compose ps`, the tabular fallback status query.
func (c *Client) PS(ctx context.Context) Result {
	return c.compose(ctx, "ps")
}

// Logs runs `docker compose logs --tail=N [service]`.
func (c *Client) Logs(ctx context.Context, service string, tail int) Result {
	return c.compose(ctx, appendService([]string{"logs", fmt.Sprintf("--tail=%d", tail)}, service)...)
}

// Validate runs `docker compose config`, which parses and validates the
// manifest without touching any container.
func (c *Client) Validate(ctx context.Context) Result {
	return c.compose(ctx, "config")
}

// DockerVersion runs `docker --version`, the "binary installed" probe.
func (c *Client) DockerVersion(ctx context.Context) Result {
	return c.runner.Run(ctx, "docker", "--version")
}

// DockerInfo runs `docker info`, the "daemon reachable" probe.
func (c *Client) DockerInfo(ctx context.Context) Result {
	return c.runner.Run(ctx, "docker", "info")
}
