package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"stackctl/internal/config"
	"stackctl/internal/design"
)

func testModel() model {
	return newModel(config.DefaultServices(), design.NewTheme(true))
}

// press feeds one key press through Update and returns the resulting model.
func press(t *testing.T, m model, msg tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", updated)
	}
	return next, cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDigitShortcutsJumpStraightToTheirAction(t *testing.T) {
	cases := []struct {
		digit string
		want  Action
	}{
		{"1", ActionUpAll},
		{"3", ActionStatus},
		{"4", ActionCheck},
		{"5", ActionLogs},
		{"6", ActionDownAll},
		{"0", ActionQuit},
	}

	for _, tc := range cases {
		m, cmd := press(t, testModel(), runeKey(tc.digit))
		if cmd == nil {
			t.Errorf("digit %s: expected a quit command", tc.digit)
		}
		if m.choice.Action != tc.want {
			t.Errorf("digit %s: expected action %s, got %s", tc.digit, tc.want, m.choice.Action)
		}
		if m.choice.ServiceKey != "" {
			t.Errorf("digit %s: unexpected service key %q", tc.digit, m.choice.ServiceKey)
		}
	}
}

func TestDigitTwoOpensServiceSubmenu(t *testing.T) {
	m, cmd := press(t, testModel(), runeKey("2"))
	if cmd != nil {
		t.Fatal("opening the submenu should not quit the program")
	}
	if m.mode != modeServices {
		t.Fatalf("expected modeServices, got %v", m.mode)
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor reset, got %d", m.cursor)
	}

	// The third service of the default registry.
	m, cmd = press(t, m, runeKey("3"))
	if cmd == nil {
		t.Fatal("picking a service should quit the program")
	}
	if m.choice.Action != ActionUpOne || m.choice.ServiceKey != "db-server" {
		t.Errorf("expected up-one db-server, got %s %q", m.choice.Action, m.choice.ServiceKey)
	}
}

func TestSubmenuZeroAndEscGoBack(t *testing.T) {
	for _, back := range []tea.KeyMsg{runeKey("0"), {Type: tea.KeyEsc}} {
		m, _ := press(t, testModel(), runeKey("2"))
		m, cmd := press(t, m, back)
		if cmd != nil {
			t.Errorf("%s: going back should not quit", back.String())
		}
		if m.mode != modeMain {
			t.Errorf("%s: expected modeMain, got %v", back.String(), m.mode)
		}
	}
}

func TestSubmenuIgnoresOutOfRangeDigits(t *testing.T) {
	m, _ := press(t, testModel(), runeKey("2"))
	m, cmd := press(t, m, runeKey("9"))
	if cmd != nil {
		t.Fatal("out-of-range digit should be ignored")
	}
	if m.mode != modeServices {
		t.Errorf("expected to stay in the submenu, got %v", m.mode)
	}
	if m.choice.Action != ActionNone {
		t.Errorf("expected no choice, got %s", m.choice.Action)
	}
}

func TestCursorNavigationSelectsWithEnter(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, runeKey("j"))
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.cursor)
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a workflow row should quit")
	}
	if m.choice.Action != ActionStatus {
		t.Errorf("expected status, got %s", m.choice.Action)
	}
}

func TestCursorWrapsAround(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, runeKey("k"))
	if want := len(m.items) - 1; m.cursor != want {
		t.Fatalf("expected wrap to %d, got %d", want, m.cursor)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("expected wrap back to 0, got %d", m.cursor)
	}
}

func TestEnterOnStartOneOpensSubmenuAndBackRowReturns(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, runeKey("j"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("entering the submenu should not quit")
	}
	if m.mode != modeServices {
		t.Fatalf("expected modeServices, got %v", m.mode)
	}

	// Wrap upwards onto the back row and select it.
	m, _ = press(t, m, runeKey("k"))
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("the back row should not quit")
	}
	if m.mode != modeMain {
		t.Errorf("expected modeMain, got %v", m.mode)
	}
}

func TestQuitBindings(t *testing.T) {
	for _, quitKey := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		m, cmd := press(t, testModel(), quitKey)
		if cmd == nil {
			t.Errorf("%s: expected a quit command", quitKey.String())
		}
		if m.choice.Action != ActionQuit {
			t.Errorf("%s: expected quit, got %s", quitKey.String(), m.choice.Action)
		}
	}
}

func TestActionString(t *testing.T) {
	cases := map[Action]string{
		ActionNone:    "none",
		ActionUpAll:   "up-all",
		ActionUpOne:   "up-one",
		ActionStatus:  "status",
		ActionCheck:   "check",
		ActionLogs:    "logs",
		ActionDownAll: "down-all",
		ActionQuit:    "quit",
	}
	for action, want := range cases {
		if got := action.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", action, got, want)
		}
	}
}
