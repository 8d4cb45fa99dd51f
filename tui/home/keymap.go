package home

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/tui/keymap"
)

// KeyMap is the shell's keymap. Every field can be rebound through
// tui.keybindings using its snake_case name.
type KeyMap struct {
	keymap.Base

	ToggleSidebar key.Binding
	ToggleTables  key.Binding
	ToggleViews   key.Binding
	ToggleQueries key.Binding
	ToggleScripts key.Binding
	OpenSettings  key.Binding
}

// NewKeyMap returns the default bindings with overrides from cfg applied.
func NewKeyMap(cfg *config.Config) KeyMap {
	km := KeyMap{
		Base: keymap.NewBase(),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "toggle sidebar"),
		),
		ToggleTables: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "tables"),
		),
		ToggleViews: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "views"),
		),
		ToggleQueries: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "queries"),
		),
		ToggleScripts: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "scripts"),
		),
		OpenSettings: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "settings"),
		),
	}
	km.Back.SetHelp("esc", "back to entities")
	if cfg != nil {
		keymap.ApplyOverrides(&km, cfg.TUI.Keybindings)
	}
	return km
}

// ValidateKeybindings rejects tui.keybindings entries that name no shell
// binding.
func ValidateKeybindings(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	km := NewKeyMap(nil)
	return keymap.ValidateOverrides(&km, cfg.TUI.Keybindings)
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleTables, k.ToggleViews, k.ToggleQueries, k.ToggleScripts, k.OpenSettings, k.ToggleSidebar, k.Help, k.Quit}
}

func (k KeyMap) Sections() []keymap.Section {
	return []keymap.Section{
		keymap.NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End),
		keymap.FiltersSection(k.ToggleTables, k.ToggleViews, k.ToggleQueries, k.ToggleScripts),
		keymap.ViewSection(k.OpenSettings, k.Back, k.ToggleSidebar),
		keymap.ActionsSection(k.Confirm, k.Refresh),
		k.SystemSection(),
	}
}
