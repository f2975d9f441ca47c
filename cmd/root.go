package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Persistent flags, shared by every subcommand.
var (
	flagDebug   bool
	flagNoColor bool
	flagFile    string
)

// rootCmd represents the base command when called without any subcommands.
// Called bare, it launches the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "stackctl",
	Short: "Build, start and inspect the local web stack",
	Long: `stackctl drives the docker compose deployment of the local web stack:
page server, API server, database, reverse proxy and cache. Build images,
start and stop services, inspect status and logs through subcommands, or
run everything from the interactive menu by calling stackctl bare.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failed pre-flight checks)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runMenu,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "stackctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "compose manifest path (overrides configuration)")

	rootCmd.AddCommand(newUpCmd())
	rootCmd.AddCommand(newDownCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogsCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newStopCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
