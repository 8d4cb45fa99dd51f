package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/kakapo/kakapo/config"
)

// Base contains the keybindings shared by every kakapo view.
type Base struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Core actions
	Confirm key.Binding
	Back    key.Binding
	Refresh key.Binding

	// System
	Quit key.Binding
	Help key.Binding
}

// NewBase returns the default vim-style keymap.
func NewBase() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("C-d", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "start"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "end"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "activate"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload catalog"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Load builds a Base keymap and applies the tui.keybindings overrides.
func Load(cfg *config.Config) Base {
	base := NewBase()
	if cfg != nil {
		ApplyOverrides(&base, cfg.TUI.Keybindings)
	}
	return base
}

// ShortHelp returns the bindings shown in the one-line help.
func (k Base) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// NavigationSection returns the cursor and scroll bindings.
func (k Base) NavigationSection() Section {
	return NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End)
}

// ActionsSection returns the confirm, back and refresh bindings.
func (k Base) ActionsSection() Section {
	return ActionsSection(k.Confirm, k.Back, k.Refresh)
}

// SystemSection returns help and quit.
func (k Base) SystemSection() Section {
	return SystemSection(k.Help, k.Quit)
}

// Sections returns every Base section.
func (k Base) Sections() []Section {
	return []Section{k.NavigationSection(), k.ActionsSection(), k.SystemSection()}
}

// FullHelp returns all bindings grouped by section.
func (k Base) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, s := range k.Sections() {
		groups = append(groups, s.Bindings)
	}
	return groups
}
