package cmd

import (
	"context"
	"os"

	"stackctl/internal/compose"
	"stackctl/internal/config"
	"stackctl/internal/design"
	"stackctl/internal/orchestrator"
	"stackctl/pkg/logging"
)

// initLogging installs the process logger on stderr so log lines never
// interleave with command output on stdout.
func initLogging() {
	level := logging.LevelInfo
	if flagDebug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)
}

// loadStackConfig loads the layered configuration and applies the --file
// override.
func loadStackConfig() (config.StackConfig, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.StackConfig{}, err
	}
	if flagFile != "" {
		cfg.ComposeFile = flagFile
	}
	return cfg, nil
}

// newOrchestrator runs the shared command bootstrap: logging, configuration,
// theme, compose client, pre-flight checks. An error from here is the only
// way a workflow command exits non-zero; once the orchestrator exists, all
// failures are reported as diagnostics and the exit code stays zero.
func newOrchestrator(ctx context.Context) (*orchestrator.Orchestrator, error) {
	initLogging()
	cfg, err := loadStackConfig()
	if err != nil {
		return nil, err
	}
	return newOrchestratorFrom(ctx, cfg)
}

// newOrchestratorFrom finishes the bootstrap for an already-loaded
// configuration.
func newOrchestratorFrom(ctx context.Context, cfg config.StackConfig) (*orchestrator.Orchestrator, error) {
	client := compose.NewClient(compose.ExecRunner{}, cfg.ComposeFilePath())
	orch := orchestrator.New(cfg, client, design.NewTheme(flagNoColor), os.Stdout)
	if err := orch.Preflight(ctx); err != nil {
		return nil, err
	}
	return orch, nil
}

// serviceArg extracts the optional positional service key.
func serviceArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
