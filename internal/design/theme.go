// Package design holds the display theme for stackctl's terminal output.
// Colors and icons are carried in a Theme value constructed once at startup
// and passed to every renderer, so nothing reads ambient color state.
package design

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck   = "✅" // U+2705
	IconCross   = "❌" // U+274C
	IconWarning = "⚠" // U+26A0 without VS16
	IconPaused  = "⏸" // U+23F8 without VS16
	IconBuild   = "🔨" // U+1F528
	IconLaunch  = "🚀" // U+1F680
	IconStop    = "🛑" // U+1F6D1
	IconTrash   = "🗑" // U+1F5D1 without VS16
	IconSearch  = "🔍" // U+1F50D
	IconList    = "📋" // U+1F4CB
	IconTest    = "🧪" // U+1F9EA
	IconFolder  = "📁" // U+1F4C1
	IconWave    = "👋" // U+1F44B
)

// Semantic colors with light/dark terminal support.
var (
	colorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	colorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	colorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	colorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	colorMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	colorTitle = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
)

// Theme is the display configuration record: one style per semantic role.
// Renderers receive a Theme instead of reaching for package-level state.
type Theme struct {
	// NoColor disables ANSI styling entirely; renderers that pick their own
	// table colors consult it.
	NoColor bool

	Title    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
}

// NewTheme constructs the theme used across the CLI and the menu. With
// noColor set, every style renders text unmodified.
func NewTheme(noColor bool) Theme {
	if noColor {
		plain := lipgloss.NewStyle()
		return Theme{
			NoColor:  true,
			Title:    plain,
			Success:  plain,
			Error:    plain,
			Warning:  plain,
			Info:     plain,
			Muted:    plain,
			Selected: plain,
		}
	}
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
		Success:  lipgloss.NewStyle().Foreground(colorSuccess),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Warning:  lipgloss.NewStyle().Foreground(colorWarning),
		Info:     lipgloss.NewStyle().Foreground(colorInfo),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
	}
}

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// It ensures that an icon doesn't "swallow" the next character by adding
// spaces depending on the display width of the icon:
//   - If the icon occupies a single cell we append 1 space.
//   - If the icon occupies two cells (common for many emojis) we append 2
//     spaces so that at least one space is visible after the icon.
func SafeIcon(icon string) string {
	w := runewidth.StringWidth(icon)
	spaces := 1
	if w >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly.
func IconText(icon string, text string) string {
	return fmt.Sprintf("%s%s", SafeIcon(icon), text)
}
