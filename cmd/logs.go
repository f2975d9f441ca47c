package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"stackctl/internal/config"
	"stackctl/internal/design"
	"stackctl/pkg/logging"
)

func newLogsCmd() *cobra.Command {
	var (
		tail            int
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "logs [service]",
		Short: "Show the last log lines of one service or the whole stack",
		Long: `Prints the trailing log lines of one service, or of every service when
called without an argument. --copy additionally puts the captured log
text on the system clipboard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogging()
			cfg, err := loadStackConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tail") {
				cfg.LogTailLines = tail
			}

			orch, err := newOrchestratorFrom(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			text, ok := orch.ShowLogs(cmd.Context(), serviceArg(args))
			if !ok || !copyToClipboard {
				return nil
			}

			theme := design.NewTheme(flagNoColor)
			if err := clipboard.WriteAll(text); err != nil {
				logging.Error("cmd", err, "copying logs to clipboard failed")
				fmt.Println(theme.Error.Render(design.IconText(design.IconCross, "copying logs to clipboard failed")))
				return nil
			}
			fmt.Println(theme.Success.Render(design.IconText(design.IconCheck, "logs copied to clipboard")))
			return nil
		},
	}

	cmd.Flags().IntVar(&tail, "tail", config.DefaultLogTailLines, "number of trailing log lines per service")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "copy the captured logs to the clipboard")
	return cmd
}
