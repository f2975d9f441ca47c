package design

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeIconNarrow(t *testing.T) {
	// Single-cell icons get one trailing space.
	got := SafeIcon(">")
	assert.Equal(t, "> ", got)
}

func TestSafeIconWide(t *testing.T) {
	// Two-cell emoji get two trailing spaces.
	got := SafeIcon(IconLaunch)
	assert.True(t, strings.HasSuffix(got, "  "), "wide icon should carry two spaces, got %q", got)
}

func TestIconText(t *testing.T) {
	got := IconText(">", "hello")
	assert.Equal(t, "> hello", got)
}

func TestNewThemeNoColorRendersPlain(t *testing.T) {
	theme := NewTheme(true)

	assert.True(t, theme.NoColor)
	assert.Equal(t, "build failed", theme.Error.Render("build failed"))
	assert.Equal(t, "all good", theme.Success.Render("all good"))
}
