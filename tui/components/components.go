package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kakapo/kakapo/tui/theme"
)

// RenderStatusBar lays out left and right content across width, padding the
// gap between them. If both do not fit, only left is shown.
func RenderStatusBar(left, right string, width int) string {
	style := theme.DefaultTheme.HeaderBar
	inner := width - style.GetHorizontalFrameSize()
	if inner < 0 {
		inner = 0
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	bar := left
	if gap >= 1 {
		bar = left + strings.Repeat(" ", gap) + right
	}

	return style.Width(width).MaxWidth(width).Render(bar)
}

// RenderSection renders a title line above indented content.
func RenderSection(title, content string) string {
	t := theme.DefaultTheme
	titleLine := t.Bold.Render(title)
	body := lipgloss.NewStyle().MarginLeft(2).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, titleLine, body)
}

// RenderEmpty renders a muted placeholder message.
func RenderEmpty(message string) string {
	return theme.DefaultTheme.Muted.Italic(true).Render(message)
}
