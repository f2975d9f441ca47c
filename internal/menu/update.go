package menu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update routes key presses. Everything that is not a key press is ignored;
// the menu has no background activity.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit(Choice{Action: ActionQuit})
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Back):
		if m.mode == modeServices {
			m.enterMain()
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Enter):
		return m.selectCursor()
	}

	return m.selectDigit(keyMsg.String())
}

// rows returns how many selectable rows the current mode shows. The service
// submenu carries one extra row: back.
func (m model) rows() int {
	if m.mode == modeServices {
		return len(m.services) + 1
	}
	return len(m.items)
}

func (m *model) moveCursor(delta int) {
	rows := m.rows()
	if rows == 0 {
		return
	}
	m.cursor = (m.cursor + delta + rows) % rows
}

func (m *model) enterMain() {
	m.mode = modeMain
	m.cursor = 0
}

func (m *model) enterServices() {
	m.mode = modeServices
	m.cursor = 0
}

// selectCursor activates the row under the cursor.
func (m model) selectCursor() (tea.Model, tea.Cmd) {
	if m.mode == modeServices {
		if m.cursor >= len(m.services) {
			m.enterMain()
			return m, nil
		}
		return m.quit(Choice{Action: ActionUpOne, ServiceKey: m.services[m.cursor].Key})
	}
	return m.selectItem(m.items[m.cursor])
}

// selectDigit handles the numbered shortcuts, which jump straight to their
// action without moving the cursor first. Unknown keys are ignored.
func (m model) selectDigit(pressed string) (tea.Model, tea.Cmd) {
	if m.mode == modeServices {
		if pressed == "0" {
			m.enterMain()
			return m, nil
		}
		idx := digitIndex(pressed, len(m.services))
		if idx < 0 {
			return m, nil
		}
		return m.quit(Choice{Action: ActionUpOne, ServiceKey: m.services[idx].Key})
	}

	for _, it := range m.items {
		if it.digit == pressed {
			return m.selectItem(it)
		}
	}
	return m, nil
}

func (m model) selectItem(it item) (tea.Model, tea.Cmd) {
	if it.action == ActionUpOne {
		m.enterServices()
		return m, nil
	}
	return m.quit(Choice{Action: it.action})
}

func (m model) quit(c Choice) (tea.Model, tea.Cmd) {
	m.choice = c
	m.quitting = true
	return m, tea.Quit
}

// digitIndex maps "1".."9" to a slice index, or -1 when out of range.
func digitIndex(pressed string, n int) int {
	if len(pressed) != 1 || pressed[0] < '1' || pressed[0] > '9' {
		return -1
	}
	idx := int(pressed[0] - '1')
	if idx >= n {
		return -1
	}
	return idx
}
