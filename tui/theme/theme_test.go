package theme

import (
	"testing"

	"github.com/kakapo/kakapo/config"
	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kanagawa", "kanagawa"},
		{"Gruvbox", "gruvbox"},
		{" terminal ", "terminal"},
		{"solarized", "kanagawa"},
		{"", "kanagawa"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewThemeWithName(tt.in).Name)
		})
	}
}

func TestTerminalThemeDisablesAlternatingRows(t *testing.T) {
	assert.False(t, NewThemeWithName("terminal").UseAlternatingRows)
	assert.True(t, NewThemeWithName("gruvbox").UseAlternatingRows)
}

func TestSetIcons(t *testing.T) {
	t.Cleanup(func() { SetIcons("nerd") })

	SetIcons("ascii")
	assert.Equal(t, "[T]", IconTable)
	assert.Equal(t, "[*]", IconSettings)

	SetIcons("nerd")
	assert.Equal(t, nerdIconTable, IconTable)
}

func TestConfigure(t *testing.T) {
	t.Setenv("KAKAPO_THEME", "")
	t.Setenv("KAKAPO_ICONS", "")
	prev := DefaultTheme
	t.Cleanup(func() {
		DefaultTheme = prev
		SetIcons("nerd")
	})

	cfg := config.Default()
	cfg.TUI.Theme = "gruvbox"
	cfg.TUI.Icons = "ascii"
	Configure(cfg)

	assert.Equal(t, "gruvbox", DefaultTheme.Name)
	assert.Equal(t, asciiIconView, IconView)
}
