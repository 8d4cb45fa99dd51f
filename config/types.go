package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Known values for the tui section.
var (
	Themes  = []string{"kanagawa", "gruvbox", "terminal"}
	IconSet = []string{"nerd", "ascii"}
)

// KeybindingSectionConfig maps snake_case action names to key combinations.
// e.g. toggle_sidebar: ["ctrl+b"]
type KeybindingSectionConfig map[string][]string

// CatalogConfig describes where the entity catalog is read from.
type CatalogConfig struct {
	// Root is a directory holding tables/, views/, queries/ and scripts/.
	// Relative paths are resolved against the directory of the config file.
	Root string `yaml:"root,omitempty" toml:"root,omitempty" json:"root,omitempty" jsonschema:"description=Directory containing tables/ views/ queries/ and scripts/"`
	// Database is an optional SQLite file whose tables and views are listed.
	Database string `yaml:"database,omitempty" toml:"database,omitempty" json:"database,omitempty" jsonschema:"description=Optional SQLite database file to list tables and views from"`
	// PostgresDSN is an optional connection string whose tables and views are listed.
	PostgresDSN string   `yaml:"postgres_dsn,omitempty" toml:"postgres_dsn,omitempty" json:"postgres_dsn,omitempty" jsonschema:"description=Optional Postgres connection string to list tables and views from"`
	Ignore      []string `yaml:"ignore,omitempty" toml:"ignore,omitempty" json:"ignore,omitempty" jsonschema:"description=Patterns (relative to root) of files to skip"`
	Watch       *bool    `yaml:"watch,omitempty" toml:"watch,omitempty" json:"watch,omitempty" jsonschema:"description=Reload the catalog when files under root change (default: true)"`
}

// WatchEnabled reports whether the catalog watcher should run.
func (c CatalogConfig) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}

// TUIConfig holds settings for the dashboard.
type TUIConfig struct {
	Theme       string                  `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"enum=kanagawa,enum=gruvbox,enum=terminal,description=Color theme"`
	Icons       string                  `yaml:"icons,omitempty" toml:"icons,omitempty" json:"icons,omitempty" jsonschema:"enum=nerd,enum=ascii,description=Icon set (nerd requires a Nerd Font)"`
	Keybindings KeybindingSectionConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" json:"keybindings,omitempty" jsonschema:"description=Keybinding overrides keyed by snake_case action name"`

	// RememberView restores the last filters and sidebar state on start.
	RememberView *bool `yaml:"remember_view,omitempty" toml:"remember_view,omitempty" json:"remember_view,omitempty" jsonschema:"description=Restore the last entity filters and sidebar state on start (default: false)"`
}

// RememberViewEnabled reports whether the dashboard view is persisted.
func (c TUIConfig) RememberViewEnabled() bool {
	return c.RememberView != nil && *c.RememberView
}

// Config is the merged kakapo configuration.
type Config struct {
	Version string        `yaml:"version" toml:"version" json:"version"`
	Name    string        `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Catalog CatalogConfig `yaml:"catalog,omitempty" toml:"catalog,omitempty" json:"catalog,omitempty"`
	TUI     TUIConfig     `yaml:"tui,omitempty" toml:"tui,omitempty" json:"tui,omitempty"`

	// Extensions captures all other top-level keys (for example "logging").
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`

	// Path is the file the project layer was read from, if any.
	Path string `yaml:"-" toml:"-" json:"-" jsonschema:"-"`
}

// coreKeys are the top-level keys decoded into Config fields rather than Extensions.
var coreKeys = map[string]bool{
	"version": true,
	"name":    true,
	"catalog": true,
	"tui":     true,
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Catalog.Root == "" {
		c.Catalog.Root = "."
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = "kanagawa"
	}
	if c.TUI.Icons == "" {
		c.TUI.Icons = "nerd"
	}
}

// Default returns a config with only defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// UnmarshalExtension decodes a top-level extension section into target.
// A missing key is not an error; target is left untouched.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
