// Package menu implements the interactive service menu. The program renders
// a numbered action list, lets the operator pick exactly one action (digits
// jump straight to it, arrows plus enter select it) and returns the pick as
// a Choice. Running the chosen workflow is the caller's job; the menu itself
// never touches a container.
package menu

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"stackctl/internal/config"
	"stackctl/internal/design"
)

// Action identifies the workflow the operator picked.
type Action int

const (
	// ActionNone means the menu was dismissed without a pick.
	ActionNone Action = iota
	ActionUpAll
	ActionUpOne
	ActionStatus
	ActionCheck
	ActionLogs
	ActionDownAll
	ActionQuit
)

// String makes Action satisfy fmt.Stringer for log lines.
func (a Action) String() string {
	switch a {
	case ActionUpAll:
		return "up-all"
	case ActionUpOne:
		return "up-one"
	case ActionStatus:
		return "status"
	case ActionCheck:
		return "check"
	case ActionLogs:
		return "logs"
	case ActionDownAll:
		return "down-all"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Choice is the operator's pick. ServiceKey is set only for ActionUpOne.
type Choice struct {
	Action     Action
	ServiceKey string
}

// menuMode distinguishes the main menu from the service submenu.
type menuMode int

const (
	modeMain menuMode = iota
	modeServices
)

// item is one selectable row of the main menu.
type item struct {
	digit  string
	title  string
	action Action
}

// mainItems returns the fixed main menu rows, numbered 1-6 plus 0 to quit.
// An ActionUpOne row opens the service submenu instead of quitting.
func mainItems() []item {
	return []item{
		{digit: "1", title: "Start all services", action: ActionUpAll},
		{digit: "2", title: "Start one service", action: ActionUpOne},
		{digit: "3", title: "Show service status", action: ActionStatus},
		{digit: "4", title: "Run service checks", action: ActionCheck},
		{digit: "5", title: "Show service logs", action: ActionLogs},
		{digit: "6", title: "Stop all services", action: ActionDownAll},
		{digit: "0", title: "Quit", action: ActionQuit},
	}
}

type model struct {
	mode     menuMode
	cursor   int
	items    []item
	services []config.ServiceDefinition
	keys     KeyMap
	help     help.Model
	theme    design.Theme
	choice   Choice
	quitting bool
}

func newModel(services []config.ServiceDefinition, theme design.Theme) model {
	return model{
		items:    mainItems(),
		services: services,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    theme,
	}
}

// Init implements tea.Model; the menu needs no startup command.
func (m model) Init() tea.Cmd {
	return nil
}
