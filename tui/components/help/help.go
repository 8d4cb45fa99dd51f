package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/kakapo/kakapo/tui/keymap"
	"github.com/kakapo/kakapo/tui/theme"
)

// KeyMap is what the help component needs from a keymap.
type KeyMap interface {
	keymap.SectionedKeyMap
	ShortHelp() []key.Binding
}

// Model is an embeddable help component: a one-line hint, or a centered
// overlay listing every section when ShowAll is set.
type Model struct {
	Keys    KeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	// Close toggles the overlay off; defaults to ? / q / esc.
	Close key.Binding

	viewport viewport.Model
}

// New creates a new help model with default settings
func New(keys KeyMap) Model {
	vp := viewport.New(0, 0)
	// The shell owns mouse handling.
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		Title:    "Help",
		Close:    key.NewBinding(key.WithKeys("?", "q", "esc")),
		viewport: vp,
	}
}

// Update handles messages for the help component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if key.Matches(msg, m.Close) {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the help component
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	if !m.ShowAll {
		if m.Keys == nil {
			return ""
		}
		return m.viewShort(m.Keys.ShortHelp())
	}

	content := m.viewport.View()
	if m.viewport.TotalLineCount() > m.viewport.Height {
		indicator := "↕ more"
		if m.viewport.AtTop() {
			indicator = "↓ more"
		} else if m.viewport.AtBottom() {
			indicator = "↑ more"
		}
		indicatorStyle := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width)
		content = lipgloss.JoinVertical(lipgloss.Right, content, indicatorStyle.Render(indicator))
	}

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

// viewShort renders the compact, single-line help view.
func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		keys := binding.Help().Key
		desc := binding.Help().Desc
		if keys != "" && desc != "" {
			pairs = append(pairs, fmt.Sprintf("%s %s",
				m.Theme.Highlight.Render(keys),
				m.Theme.Muted.Render(desc),
			))
		}
	}
	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// Toggle flips between the short hint and the full overlay. Opening the
// overlay re-lays out the content and scrolls to the top.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions of the help view
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

func (m *Model) setViewportContent() {
	const (
		verticalMargin   = 4
		horizontalMargin = 4
		gutterWidth      = 4
	)
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	var sections []keymap.Section
	if m.Keys != nil {
		sections = m.Keys.Sections()
	}

	content := m.renderHelpContent(sections, verticalMargin, horizontalMargin, gutterWidth)
	m.viewport.SetContent(content)
	// One line is reserved for the scroll indicator.
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = m.Height - verticalMargin - 1
}

// renderHelpContent uses one column when it fits vertically, otherwise two
// columns if they fit horizontally. The viewport scrolls whatever remains.
func (m *Model) renderHelpContent(sections []keymap.Section, vMargin, hMargin, gutter int) string {
	blocks := m.sectionBlocks(sections)
	if len(blocks) == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)
	withTitle := func(body string) string {
		return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Width(lipgloss.Width(body)).Render(m.Title), body)
	}

	single := withTitle(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	if lipgloss.Height(single) <= m.Height-vMargin-1 || len(blocks) < 2 {
		return single
	}

	double := withTitle(twoColumns(blocks, gutter))
	if lipgloss.Width(double) <= m.Width-hMargin {
		return double
	}
	return single
}

// twoColumns greedily adds each block to the shorter column.
func twoColumns(blocks []string, gutter int) string {
	var columns [2][]string
	var heights [2]int
	for _, block := range blocks {
		i := 0
		if heights[1] < heights[0] {
			i = 1
		}
		columns[i] = append(columns[i], block)
		heights[i] += lipgloss.Height(block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, columns[0]...),
		strings.Repeat(" ", gutter),
		lipgloss.JoinVertical(lipgloss.Left, columns[1]...),
	)
}

func (m *Model) sectionBlocks(sections []keymap.Section) []string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Cyan)

	var blocks []string
	for _, section := range sections {
		var rows [][]string
		for _, binding := range section.Enabled() {
			keyStr := binding.Help().Key
			desc := binding.Help().Desc
			if keyStr != "" && desc != "" {
				rows = append(rows, []string{
					keyStyle.Render(keyStr),
					m.Theme.Muted.Italic(true).Render(desc),
				})
			}
		}
		if len(rows) > 0 {
			blocks = append(blocks, m.renderSectionBox(section.Name, rows))
		}
	}
	return blocks
}

func (m *Model) renderSectionBox(title string, rows [][]string) string {
	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(rows...)

	titleStyle := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true).
		MarginBottom(1)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(sectionIcon(title)+" "+title),
		table.String(),
	)
	return boxStyle.Render(content)
}

func sectionIcon(name string) string {
	switch name {
	case keymap.SectionNavigation:
		return theme.IconArrow
	case keymap.SectionFilters:
		return theme.IconTable
	case keymap.SectionView:
		return theme.IconView
	case keymap.SectionSystem:
		return theme.IconSettings
	default:
		return theme.IconBullet
	}
}
