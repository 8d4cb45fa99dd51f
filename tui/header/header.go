// Package header renders the dashboard's top bar and its sidebar toggle.
package header

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kakapo/kakapo/tui/components"
	"github.com/kakapo/kakapo/tui/theme"
)

// Height is the number of rows the header occupies.
const Height = 1

// Props are supplied by the shell on every render and update.
type Props struct {
	// Compress is true while the sidebar is hidden.
	Compress bool
	// SwitchCompression produces the message that asks the shell to flip
	// Compress.
	SwitchCompression func() tea.Msg
}

// Model is the header bar.
type Model struct {
	Title   string
	Catalog string
	Width   int
	Toggle  key.Binding
}

// New creates a header. toggle is the binding that flips the sidebar.
func New(title, catalog string, toggle key.Binding) Model {
	return Model{
		Title:   title,
		Catalog: catalog,
		Toggle:  toggle,
	}
}

// Update returns p.SwitchCompression as a command when the toggle key is
// pressed or the indicator is clicked. All other messages are ignored.
func (m Model) Update(msg tea.Msg, p Props) tea.Cmd {
	if p.SwitchCompression == nil {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.Toggle) {
			return p.SwitchCompression
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.IndicatorHit(msg.X, msg.Y, p) {
			return p.SwitchCompression
		}
	}
	return nil
}

// IndicatorHit reports whether the cell (x, y) lies on the collapse
// indicator, including the bar's left padding.
func (m Model) IndicatorHit(x, y int, p Props) bool {
	if y != 0 || x < 0 {
		return false
	}
	left := theme.DefaultTheme.HeaderBar.GetPaddingLeft()
	return x < left+lipgloss.Width(indicator(p.Compress))+1
}

// View renders the bar across Width.
func (m Model) View(p Props) string {
	t := theme.DefaultTheme
	left := t.Highlight.Render(indicator(p.Compress)) + " " + t.Bold.Render(m.Title)
	right := ""
	if m.Catalog != "" {
		right = t.Muted.Render(m.Catalog)
	}
	return components.RenderStatusBar(left, right, m.Width)
}

// indicator shows the action a click performs: open when hidden,
// collapse when shown.
func indicator(compress bool) string {
	if compress {
		return theme.IconMenu
	}
	return theme.IconCollapse
}
