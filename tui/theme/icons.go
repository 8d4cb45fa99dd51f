package theme

import (
	"os"

	"github.com/kakapo/kakapo/config"
)

// Nerd Font icons
const (
	nerdIconTable    = "\uf1c0"     // fa-database
	nerdIconView     = "\uf06e"     // fa-eye
	nerdIconQuery    = "\uf002"     // fa-search
	nerdIconScript   = "\uf121"     // fa-code
	nerdIconSettings = "\uf013"     // fa-cog
	nerdIconSuccess  = "\U000f012c" // md-check
	nerdIconError    = "\uea87"     // cod-error
	nerdIconWarning  = "\uf071"     // fa-warning
	nerdIconInfo     = "\U000f02fc" // md-information
	nerdIconArrow    = "\U000f0054" // md-arrow_right
	nerdIconBullet   = "\uf444"     // oct-dot_fill
	nerdIconMenu     = "\U000f035c" // md-menu
	nerdIconCollapse = "\U000f04cd" // md-arrow_collapse_left
)

// ASCII fallback icons
const (
	asciiIconTable    = "[T]"
	asciiIconView     = "[V]"
	asciiIconQuery    = "[Q]"
	asciiIconScript   = "[S]"
	asciiIconSettings = "[*]"
	asciiIconSuccess  = "✓"
	asciiIconError    = "✗"
	asciiIconWarning  = "!"
	asciiIconInfo     = "i"
	asciiIconArrow    = ">"
	asciiIconBullet   = "•"
	asciiIconMenu     = "☰"
	asciiIconCollapse = "⇤"
)

var (
	IconTable    string
	IconView     string
	IconQuery    string
	IconScript   string
	IconSettings string
	IconSuccess  string
	IconError    string
	IconWarning  string
	IconInfo     string
	IconArrow    string
	IconBullet   string
	IconMenu     string
	IconCollapse string
)

func init() {
	set := os.Getenv("KAKAPO_ICONS")
	if set == "" {
		if cfg, err := config.LoadDefault(); err == nil {
			set = cfg.TUI.Icons
		}
	}
	SetIcons(set)
}

// SetIcons switches the icon variables to the named set. Anything other than
// "ascii" selects Nerd Font glyphs.
func SetIcons(set string) {
	if set == "ascii" {
		IconTable = asciiIconTable
		IconView = asciiIconView
		IconQuery = asciiIconQuery
		IconScript = asciiIconScript
		IconSettings = asciiIconSettings
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconArrow = asciiIconArrow
		IconBullet = asciiIconBullet
		IconMenu = asciiIconMenu
		IconCollapse = asciiIconCollapse
		return
	}
	IconTable = nerdIconTable
	IconView = nerdIconView
	IconQuery = nerdIconQuery
	IconScript = nerdIconScript
	IconSettings = nerdIconSettings
	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconWarning = nerdIconWarning
	IconInfo = nerdIconInfo
	IconArrow = nerdIconArrow
	IconBullet = nerdIconBullet
	IconMenu = nerdIconMenu
	IconCollapse = nerdIconCollapse
}
