// Package cli renders stackctl's terminal tables. Renderers write to the
// provided io.Writer and take the display theme explicitly; they hold no
// state of their own.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"stackctl/internal/design"
	"stackctl/internal/stack"
)

// RenderStatusTable renders the service status table. Every registered
// service appears exactly once, in registry order. A service is shown as
// running only when its reported state matches stack.Running; services the
// orchestrator did not report and services reported in a non-running state
// (e.g. "Exited") both render as stopped.
func RenderStatusTable(w io.Writer, reg *stack.Registry, st stack.Status, theme design.Theme) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(headerRow(theme, "service", "name", "state"))

	for _, def := range reg.Definitions() {
		state, running := "stopped", false
		if raw, ok := st[def.Key]; ok && stack.Running(raw) {
			state, running = "running", true
		}
		t.AppendRow(table.Row{def.Key, def.DisplayName, stateCell(theme, state, running)})
	}

	t.Render()
}

// PortProbe is the outcome of one diagnostic TCP connect.
type PortProbe struct {
	Key         string
	DisplayName string
	Port        int
	Err         error
}

// RenderPortCheck renders the diagnostic port-probe results. Probe failures
// are informational; the caller never fails a workflow on them.
func RenderPortCheck(w io.Writer, probes []PortProbe, theme design.Theme) {
	if len(probes) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(headerRow(theme, "service", "port", "connect"))

	for _, p := range probes {
		result := design.IconText(design.IconCheck, "open")
		if !theme.NoColor {
			result = text.FgGreen.Sprint(result)
		}
		if p.Err != nil {
			result = design.IconText(design.IconCross, "closed")
			if !theme.NoColor {
				result = text.FgRed.Sprint(result)
			}
		}
		t.AppendRow(table.Row{p.Key, fmt.Sprintf("%d", p.Port), result})
	}

	t.Render()
}

func headerRow(theme design.Theme, cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, col := range cols {
		if theme.NoColor {
			row[i] = strings.ToUpper(col)
			continue
		}
		row[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	return row
}

func stateCell(theme design.Theme, state string, running bool) string {
	if running {
		cell := "🟢 " + state
		if theme.NoColor {
			return cell
		}
		return text.FgGreen.Sprint(cell)
	}
	cell := "🔴 " + state
	if theme.NoColor {
		return cell
	}
	return text.FgRed.Sprint(cell)
}
