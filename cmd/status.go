package cmd

import (
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the status of every service",
		Long: `Queries the running containers and renders one table row per configured
service. Services without a running container show as stopped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			orch.DisplayStatus(cmd.Context())
			return nil
		},
	}
}
