// Package entities renders the catalog filtered by the selected kinds.
package entities

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kakapo/kakapo/catalog"
	"github.com/kakapo/kakapo/tui/components"
	"github.com/kakapo/kakapo/tui/components/table"
	"github.com/kakapo/kakapo/tui/keymap"
	"github.com/kakapo/kakapo/tui/theme"
)

// Props are the shell-supplied inputs.
type Props struct {
	// Select lists the kinds to show, in display order.
	Select []catalog.Kind
}

// NoSelection is shown when Props.Select is empty.
const NoSelection = "No entity types selected"

var columns = []string{"Name", "Source", "Location", "Description"}

// Model holds the latest catalog snapshot and the scroll position.
type Model struct {
	keys     keymap.Base
	entities []catalog.Entity
	err      error
	loaded   bool
	width    int
	viewport viewport.Model
}

// New creates an empty entities view.
func New(keys keymap.Base) Model {
	return Model{keys: keys, viewport: viewport.New(0, 0)}
}

// SetEntities replaces the snapshot and clears any load error.
func (m *Model) SetEntities(entities []catalog.Entity) {
	m.entities = entities
	m.err = nil
	m.loaded = true
}

// SetError records a failed load. The previous snapshot stays visible.
func (m *Model) SetError(err error) {
	m.err = err
	m.loaded = true
}

// SetSize resizes the view.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height
}

// Update scrolls on page keys and the mouse wheel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PageDown):
			m.scroll(m.viewport.Height)
		case key.Matches(msg, m.keys.PageUp):
			m.scroll(-m.viewport.Height)
		case key.Matches(msg, m.keys.Home):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.End):
			m.viewport.GotoBottom()
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.scroll(3)
		case tea.MouseButtonWheelUp:
			m.scroll(-3)
		}
	}
	return m, nil
}

func (m *Model) scroll(delta int) {
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

// Sync renders p into the viewport so scrolling sees the current content.
// The shell calls it after every update.
func (m *Model) Sync(p Props) {
	m.viewport.SetContent(m.content(p))
}

// View renders the sections for p into the scrolling viewport.
func (m Model) View(p Props) string {
	content := m.content(p)
	if m.viewport.Height <= 0 {
		return content
	}
	vp := m.viewport
	vp.SetContent(content)
	return vp.View()
}

func (m Model) content(p Props) string {
	content := Render(m.entities, p, m.width)
	if m.err != nil {
		style := theme.DefaultTheme.Error
		if m.width > 0 {
			// the viewport cuts long lines instead of wrapping them
			style = style.Width(m.width)
		}
		content = style.Render(theme.IconError+" "+m.err.Error()) + "\n\n" + content
	} else if !m.loaded {
		content = components.RenderEmpty("Loading catalog…")
	}
	return content
}

// Render lays out one section per selected kind: a heading with a count,
// then a table, or a placeholder when the kind has no entities. It is
// also used for non-interactive output.
func Render(entities []catalog.Entity, p Props, width int) string {
	if len(p.Select) == 0 {
		return components.RenderEmpty(NoSelection)
	}

	groups := catalog.GroupByKind(entities)
	var sections []string
	seen := make(map[catalog.Kind]bool)
	for _, kind := range p.Select {
		if seen[kind] {
			continue
		}
		seen[kind] = true
		sections = append(sections, renderSection(kind, groups[kind], width))
	}
	return strings.Join(sections, "\n\n")
}

func renderSection(kind catalog.Kind, entities []catalog.Entity, width int) string {
	title := fmt.Sprintf("%s %s (%d)", kindIcon(kind), kind.Label(), len(entities))
	if len(entities) == 0 {
		return components.RenderSection(title, components.RenderEmpty("no "+strings.ToLower(kind.Label())+" found"))
	}

	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, []string{e.Name, e.Source, e.Location, e.Description})
	}
	body := table.NewBuilder().
		WithHeaders(columns...).
		WithRows(rows...).
		WithWidth(width - 2).
		Build().
		String()
	return components.RenderSection(title, body)
}

func kindIcon(kind catalog.Kind) string {
	switch kind {
	case catalog.KindTable:
		return theme.IconTable
	case catalog.KindView:
		return theme.IconView
	case catalog.KindQuery:
		return theme.IconQuery
	case catalog.KindScript:
		return theme.IconScript
	}
	return theme.IconBullet
}
