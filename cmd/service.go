package cmd

// The direct service operations: build, stop, rm. Each wraps exactly one
// compose subcommand, unlike up and down which run whole workflows.

import (
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [service]",
		Short: "Build the images of the stack, or of a single service",
		Long: `Builds the container images without starting anything. With no argument
every image of the stack is built.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			orch.Build(cmd.Context(), serviceArg(args))
			return nil
		},
	}
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop [service]",
		Short: "Stop the stack, or a single service",
		Long: `Stops the running containers without removing them. Stopping something
that is already stopped succeeds quietly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			orch.Stop(cmd.Context(), serviceArg(args))
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [service]",
		Short: "Remove stopped containers of the stack, or of a single service",
		Long: `Force-removes the containers of the stack or of one service. Networks
and volumes stay untouched; use down to tear the whole stack away.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			orch.Remove(cmd.Context(), serviceArg(args))
			return nil
		},
	}
}
