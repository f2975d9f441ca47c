package cmd

import (
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every service runs and its port answers",
		Long: `Verifies that every configured service is reported running, then probes
each mapped host port with a short TCP connect. Port probe results are
informational; only a service that is not running fails the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := newOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			orch.CheckServices(cmd.Context())
			return nil
		},
	}
}
