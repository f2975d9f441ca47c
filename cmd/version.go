package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of stackctl",
		Long:  `All software has versions. This is stackctl's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// The version itself lives on the root command, set by main
			// from the build-time ldflags.
			fmt.Printf("stackctl version %s\n", rootCmd.Version)
		},
	}
}
