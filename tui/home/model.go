// Package home is the dashboard shell: a header, a sidebar of entity-kind
// filters plus a settings entry, and a content area showing either the
// entities or the settings panel.
package home

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kakapo/kakapo/catalog"
	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/logging"
	"github.com/kakapo/kakapo/tui/components/help"
	"github.com/kakapo/kakapo/tui/entities"
	"github.com/kakapo/kakapo/tui/header"
	"github.com/kakapo/kakapo/tui/settings"
	"github.com/sirupsen/logrus"
)

// Options configures a shell Model.
type Options struct {
	Context context.Context
	Config  *config.Config
	Catalog *catalog.Catalog
	// Reloads delivers watcher events; nil disables live reload.
	Reloads  <-chan catalog.Reloaded
	Settings settings.Info
	Title    string
	Logger   *logrus.Entry
	// Initial replaces the default starting state when set.
	Initial *ViewState
}

// Model is the Bubble Tea model for the shell.
type Model struct {
	ctx     context.Context
	catalog *catalog.Catalog
	reloads <-chan catalog.Reloaded
	logger  *logrus.Entry

	state  ViewState
	keys   KeyMap
	cursor int

	header   header.Model
	entities entities.Model
	settings settings.Model
	help     help.Model

	width  int
	height int
}

// New builds the shell in its initial state.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger("home")
	}
	if opts.Title == "" {
		opts.Title = "Kakapo"
	}

	keys := NewKeyMap(opts.Config)
	catalogName := ""
	if opts.Config != nil {
		catalogName = opts.Config.Name
	}

	initial := NewViewState()
	if opts.Initial != nil {
		initial = *opts.Initial
		initial.Selections = append([]catalog.Kind(nil), opts.Initial.Selections...)
	}

	h := help.New(keys)
	h.Title = opts.Title + " keys"

	return Model{
		ctx:      opts.Context,
		catalog:  opts.Catalog,
		reloads:  opts.Reloads,
		logger:   opts.Logger,
		state:    initial,
		keys:     keys,
		header:   header.New(opts.Title, catalogName, keys.ToggleSidebar),
		entities: entities.New(keys.Base),
		settings: settings.New(opts.Settings, keys.Sections()),
		help:     h,
	}
}

// State returns the current view state.
func (m Model) State() ViewState {
	return m.state
}

// Init loads the catalog and starts listening for reloads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCatalog(m.ctx, m.catalog), waitForReload(m.reloads))
}

// Update handles input and background messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.resize()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case switchCompressionMsg:
		m.state = m.state.SwitchCompression()
		m.resize()

	case catalogLoadedMsg:
		m.applyCatalog(msg.entities, msg.err)

	case catalogReloadedMsg:
		m.applyCatalog(msg.Entities, msg.Err)
		cmd = waitForReload(m.reloads)
	}

	m.entities.Sync(m.entitiesProps())
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.help.ShowAll {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return cmd
	}

	if cmd := m.header.Update(msg, m.headerProps()); cmd != nil {
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
	case key.Matches(msg, m.keys.ToggleTables):
		m.selectKind(catalog.KindTable)
	case key.Matches(msg, m.keys.ToggleViews):
		m.selectKind(catalog.KindView)
	case key.Matches(msg, m.keys.ToggleQueries):
		m.selectKind(catalog.KindQuery)
	case key.Matches(msg, m.keys.ToggleScripts):
		m.selectKind(catalog.KindScript)
	case key.Matches(msg, m.keys.OpenSettings):
		m.state = m.state.SetTab(TabSettings)
	case key.Matches(msg, m.keys.Back):
		if m.state.Tab == TabSettings {
			m.state = m.state.SetTab(TabEntities)
		}
	case key.Matches(msg, m.keys.Refresh):
		return loadCatalog(m.ctx, m.catalog)
	case key.Matches(msg, m.keys.Up):
		if !m.state.Compress && m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if !m.state.Compress && m.cursor < visibleEntries(m.sidebarHeight())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if !m.state.Compress && m.cursor < visibleEntries(m.sidebarHeight()) {
			m.activate(m.cursor)
		}
	default:
		if m.state.Tab == TabEntities {
			var cmd tea.Cmd
			m.entities, cmd = m.entities.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.help.ShowAll {
		return nil
	}
	if msg.Y < header.Height {
		return m.header.Update(msg, m.headerProps())
	}

	inSidebar := !m.state.Compress && msg.X < sidebarWidth()
	if inSidebar {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := entryAt(msg.Y-header.Height, m.sidebarHeight()); ok {
				m.cursor = i
				m.activate(i)
			}
		}
		return nil
	}

	if m.state.Tab == TabEntities {
		var cmd tea.Cmd
		m.entities, cmd = m.entities.Update(msg)
		return cmd
	}
	return nil
}

// activate applies sidebar entry i.
func (m *Model) activate(i int) {
	e := sidebarEntries[i]
	if e.settings {
		m.state = m.state.SetTab(TabSettings)
		return
	}
	m.selectKind(e.kind)
}

func (m *Model) selectKind(kind catalog.Kind) {
	m.state = m.state.SetEntitySelection(kind)
	m.logger.WithField("selections", kindNames(m.state.Selections)).Debug("Entity selection changed")
}

func (m *Model) applyCatalog(entities []catalog.Entity, err error) {
	if err != nil {
		m.logger.WithError(err).Warn("Catalog load failed")
		m.entities.SetError(err)
		return
	}
	m.entities.SetEntities(entities)
}

func (m Model) headerProps() header.Props {
	return header.Props{
		Compress:          m.state.Compress,
		SwitchCompression: switchCompression,
	}
}

// contentSize is the area left for the selected view.
func (m Model) contentSize() (int, int) {
	w := m.width
	if !m.state.Compress {
		w -= sidebarWidth()
	}
	// header plus the help line
	h := m.height - header.Height - 1
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// sidebarHeight is the number of sidebar rows on screen.
func (m Model) sidebarHeight() int {
	_, h := m.contentSize()
	return h
}

func (m *Model) resize() {
	m.header.Width = m.width
	w, h := m.contentSize()
	m.entities.SetSize(w, h)
	if last := visibleEntries(h) - 1; m.cursor > last && last >= 0 {
		m.cursor = last
	}
}

// View renders the shell.
func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	w, h := m.contentSize()
	content := lipgloss.NewStyle().
		Width(w).
		Height(h).
		MaxHeight(h).
		Render(m.renderSelection())

	body := content
	if !m.state.Compress {
		body = lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(m.state, m.cursor, h), content)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(m.headerProps()),
		body,
		m.help.View(),
	)
}

func kindNames(kinds []catalog.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
