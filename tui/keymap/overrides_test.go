package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ToggleSidebar", "toggle_sidebar"},
		{"PageUp", "page_up"},
		{"OpenSettings", "open_settings"},
		{"Up", "up"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camelToSnake(tt.input))
		})
	}
}

type testKeyMap struct {
	Base
	ToggleSidebar key.Binding
	OpenSettings  key.Binding
	unexported    key.Binding
	NotABinding   string
}

func newTestKeyMap() testKeyMap {
	return testKeyMap{
		Base: NewBase(),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "toggle sidebar"),
		),
		OpenSettings: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "settings"),
		),
		NotABinding: "not a binding",
	}
}

func TestApplyOverrides(t *testing.T) {
	km := newTestKeyMap()

	ApplyOverrides(&km, config.KeybindingSectionConfig{
		"toggle_sidebar": {"ctrl+s", "f2"},
		"quit":           {"Q"},
		"not_a_binding":  {"x"},
	})

	assert.Equal(t, []string{"ctrl+s", "f2"}, km.ToggleSidebar.Keys())
	assert.Equal(t, "toggle sidebar", km.ToggleSidebar.Help().Desc)
	assert.Equal(t, "ctrl+s", km.ToggleSidebar.Help().Key)

	assert.Equal(t, []string{"Q"}, km.Quit.Keys(), "embedded Base bindings are overridable")
	assert.Equal(t, []string{","}, km.OpenSettings.Keys())
	assert.Equal(t, "not a binding", km.NotABinding)
}

func TestApplyOverridesIgnoresNonPointers(t *testing.T) {
	km := newTestKeyMap()
	ApplyOverrides(km, config.KeybindingSectionConfig{"toggle_sidebar": {"x"}})
	assert.Equal(t, []string{"ctrl+b"}, km.ToggleSidebar.Keys())
}

func TestUnknownOverrides(t *testing.T) {
	km := newTestKeyMap()
	unknown := UnknownOverrides(&km, config.KeybindingSectionConfig{
		"toggle_sidebar": {"x"},
		"zoom":           {"z"},
		"not_a_binding":  {"y"},
		"unexported":     {"u"},
	})
	assert.Equal(t, []string{"not_a_binding", "unexported", "zoom"}, unknown)
}

func TestValidateOverrides(t *testing.T) {
	km := newTestKeyMap()
	require.NoError(t, ValidateOverrides(&km, config.KeybindingSectionConfig{"page_down": {"space"}}))

	err := ValidateOverrides(&km, config.KeybindingSectionConfig{"zoom": {"z"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
	assert.Contains(t, err.Error(), "zoom")
}

func TestLoadAppliesConfigKeybindings(t *testing.T) {
	cfg := config.Default()
	cfg.TUI.Keybindings = config.KeybindingSectionConfig{"help": {"h"}}

	base := Load(cfg)
	assert.Equal(t, []string{"h"}, base.Help.Keys())
	assert.Equal(t, NewBase().Quit.Keys(), Load(nil).Quit.Keys())
}

func TestExportSections(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithDisabled())
	sections := []Section{
		NewBase().SystemSection(),
		NewSection("Empty", disabled),
	}

	out := ExportSections(sections)
	require.Len(t, out, 1)
	assert.Equal(t, SectionSystem, out[0].Name)
	assert.Equal(t, "help", out[0].Bindings[0].Description)
	assert.Equal(t, []string{"q", "ctrl+c"}, out[0].Bindings[1].Keys)
}
