package cmd

import (
	"github.com/spf13/cobra"
)

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Stop and remove the whole stack",
		Long: `Stops every service and removes the containers, orphans included. Images
and volumes stay untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			orch.TearDownAll(cmd.Context())
			return nil
		},
	}
}
