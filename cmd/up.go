package cmd

import (
	"github.com/spf13/cobra"
)

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up [service]",
		Short: "Build and start the stack, or a single service",
		Long: `Runs the environment checks, builds the images and starts the containers
detached. With no argument the whole stack comes up; naming a service
brings up just that one. After the start every service's reported state
and host port is checked, but check failures only warn.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			if key := serviceArg(args); key != "" {
				orch.UpOne(cmd.Context(), key)
				return nil
			}
			orch.UpAll(cmd.Context())
			return nil
		},
	}
}
