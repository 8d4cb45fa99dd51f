// Package settings renders the static settings panel.
package settings

import (
	"strings"

	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/tui/components"
	"github.com/kakapo/kakapo/tui/components/table"
	"github.com/kakapo/kakapo/tui/keymap"
	"github.com/kakapo/kakapo/tui/theme"
)

// Info is the snapshot the panel displays.
type Info struct {
	ConfigPath  string
	CatalogRoot string
	Database    string
	Postgres    bool
	Ignore      []string
	Watch       bool
	Theme       string
	Icons       string
	Remember    bool
	LogLevel    string
	Version     string
}

// FromConfig fills Info from a loaded config. LogLevel and Version are left
// for the caller.
func FromConfig(cfg *config.Config) Info {
	if cfg == nil {
		cfg = config.Default()
	}
	return Info{
		ConfigPath:  cfg.Path,
		CatalogRoot: cfg.Catalog.Root,
		Database:    cfg.Catalog.Database,
		Postgres:    cfg.Catalog.PostgresDSN != "",
		Ignore:      cfg.Catalog.Ignore,
		Watch:       cfg.Catalog.WatchEnabled(),
		Theme:       cfg.TUI.Theme,
		Icons:       cfg.TUI.Icons,
		Remember:    cfg.TUI.RememberViewEnabled(),
	}
}

// Model is built once; View takes no props.
type Model struct {
	info     Info
	sections []keymap.Section
	view     string
}

// New pre-renders the panel.
func New(info Info, sections []keymap.Section) Model {
	m := Model{info: info, sections: sections}
	m.view = m.render()
	return m
}

// View returns the rendered panel.
func (m Model) View() string {
	return m.view
}

func (m Model) render() string {
	t := theme.DefaultTheme
	status := table.StatusTable([][]string{
		{"Config file", orNone(m.info.ConfigPath)},
		{"Catalog root", m.info.CatalogRoot},
		{"SQLite database", orNone(m.info.Database)},
		{"Postgres", enabled(m.info.Postgres)},
		{"Ignore", orNone(strings.Join(m.info.Ignore, ", "))},
		{"Watch", enabled(m.info.Watch)},
		{"Theme", m.info.Theme},
		{"Icons", m.info.Icons},
		{"Remember view", enabled(m.info.Remember)},
		{"Log level", orNone(m.info.LogLevel)},
		{"Version", orNone(m.info.Version)},
	})

	parts := []string{
		t.Header.Render(theme.IconSettings + " Settings"),
		status,
	}

	for _, s := range keymap.ExportSections(m.sections) {
		var rows [][]string
		for _, b := range s.Bindings {
			rows = append(rows, []string{strings.Join(b.Keys, " / "), b.Description})
		}
		body := table.NewBuilder().
			WithBorder(false).
			WithAlternateRows(false).
			WithRows(rows...).
			Build().
			String()
		parts = append(parts, "", components.RenderSection(s.Name, body))
	}

	return strings.Join(parts, "\n")
}

func orNone(s string) string {
	if s == "" {
		return theme.DefaultTheme.Muted.Render("none")
	}
	return s
}

func enabled(b bool) string {
	if b {
		return theme.DefaultTheme.Success.Render("enabled")
	}
	return theme.DefaultTheme.Muted.Render("disabled")
}
