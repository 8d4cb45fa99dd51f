package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar("kakapo", "catalog", 40)
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.True(t, strings.Index(out, "kakapo") < strings.Index(out, "catalog"))
}

func TestRenderStatusBarDropsRightWhenNarrow(t *testing.T) {
	out := RenderStatusBar("kakapo", "a-very-long-catalog-name", 16)
	assert.Contains(t, out, "kakapo")
	assert.NotContains(t, out, "catalog")
}

func TestRenderSection(t *testing.T) {
	out := RenderSection("Tables (2)", "users\norders")
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Tables (2)")
	assert.True(t, strings.HasPrefix(lines[1], "  "))
}
