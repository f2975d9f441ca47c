package menu

import (
	"fmt"
	"strings"

	"stackctl/internal/design"
)

// View renders the current menu. Every row keeps its digit visible so the
// shortcuts stay discoverable; the cursor row is additionally highlighted.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render(design.IconText(design.IconLaunch, "stackctl")))
	b.WriteString("\n\n")

	if m.mode == modeServices {
		b.WriteString(m.theme.Info.Render("Start which service?"))
		b.WriteString("\n\n")
		for i, def := range m.services {
			b.WriteString(m.row(i, fmt.Sprintf("%d", i+1), def.DisplayName))
		}
		b.WriteString(m.row(len(m.services), "0", "Back"))
	} else {
		b.WriteString(m.theme.Info.Render("What do you want to do?"))
		b.WriteString("\n\n")
		for i, it := range m.items {
			b.WriteString(m.row(i, it.digit, it.title))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// row renders one selectable line.
func (m model) row(idx int, digit, title string) string {
	line := fmt.Sprintf("%s. %s", digit, title)
	if idx == m.cursor {
		return m.theme.Selected.Render("❯ "+line) + "\n"
	}
	return "  " + line + "\n"
}
