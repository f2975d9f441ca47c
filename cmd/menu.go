package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stackctl/internal/design"
	"stackctl/internal/menu"
	"stackctl/internal/orchestrator"
	"stackctl/pkg/logging"
)

// runMenu is the bare-command behavior: show the menu, run the picked
// workflow with the menu closed so compose output lands on the plain
// terminal, pause, relaunch. Quitting the menu touches no container.
func runMenu(cmd *cobra.Command, args []string) error {
	orch, err := newOrchestrator(cmd.Context())
	if err != nil {
		return err
	}
	theme := design.NewTheme(flagNoColor)

	for {
		choice, err := menu.Run(orch.Registry().Definitions(), theme)
		if err != nil {
			return err
		}
		logging.Debug("cmd", "menu choice: %s %s", choice.Action, choice.ServiceKey)

		if choice.Action == menu.ActionQuit || choice.Action == menu.ActionNone {
			fmt.Println(theme.Info.Render(design.IconText(design.IconWave, "bye")))
			return nil
		}

		runMenuAction(cmd.Context(), orch, choice)
		pause()
	}
}

func runMenuAction(ctx context.Context, orch *orchestrator.Orchestrator, choice menu.Choice) {
	switch choice.Action {
	case menu.ActionUpAll:
		orch.UpAll(ctx)
	case menu.ActionUpOne:
		orch.UpOne(ctx, choice.ServiceKey)
	case menu.ActionStatus:
		orch.DisplayStatus(ctx)
	case menu.ActionCheck:
		orch.CheckServices(ctx)
	case menu.ActionLogs:
		orch.ShowLogs(ctx, "")
	case menu.ActionDownAll:
		orch.TearDownAll(ctx)
	}
}

// pause waits for enter so the operator can read the workflow output before
// the alt-screen menu takes over again.
func pause() {
	fmt.Print("\nPress Enter to continue...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
