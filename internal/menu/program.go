package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"stackctl/internal/config"
	"stackctl/internal/design"
)

// Run shows the menu and blocks until the operator picks an action or
// dismisses it. Dismissal (q, ctrl+c or the 0 row) is reported as
// ActionQuit, so callers can treat all three alike.
func Run(services []config.ServiceDefinition, theme design.Theme) (Choice, error) {
	p := tea.NewProgram(newModel(services, theme), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Choice{}, fmt.Errorf("running menu: %w", err)
	}
	m, ok := final.(model)
	if !ok {
		return Choice{}, fmt.Errorf("unexpected final menu model %T", final)
	}
	return m.choice, nil
}
