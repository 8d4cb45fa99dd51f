package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kakapo/kakapo/config"
)

const defaultThemeName = "kanagawa"

// palette is one theme's colors as light/dark hex pairs.
type palette struct {
	green, yellow, red, orange, cyan, violet [2]string
	lightText, mutedText, border             [2]string
	selectedBackground, subtleBackground     [2]string
}

var (
	// Kanagawa Wave (light) / Dragon (dark)
	kanagawa = palette{
		green:              [2]string{"#4E7C5A", "#98BB6C"},
		yellow:             [2]string{"#A68A64", "#FF9E3B"},
		red:                [2]string{"#C34043", "#FF5D62"},
		orange:             [2]string{"#CC6B4E", "#FFA066"},
		cyan:               [2]string{"#5B8BBE", "#7E9CD8"},
		violet:             [2]string{"#674D7A", "#957FB8"},
		lightText:          [2]string{"#2B2F42", "#DCD7BA"},
		mutedText:          [2]string{"#6C7086", "#727169"},
		border:             [2]string{"#B5BDC5", "#363646"},
		selectedBackground: [2]string{"#E2E6F3", "#223249"},
		subtleBackground:   [2]string{"#F7F7FB", "#1F1F28"},
	}

	gruvbox = palette{
		green:              [2]string{"#98971A", "#B8BB26"},
		yellow:             [2]string{"#D79921", "#FABD2F"},
		red:                [2]string{"#CC241D", "#FB4934"},
		orange:             [2]string{"#D65D0E", "#FE8019"},
		cyan:               [2]string{"#458588", "#83A598"},
		violet:             [2]string{"#8F3F71", "#B16286"},
		lightText:          [2]string{"#3C3836", "#EBDBB2"},
		mutedText:          [2]string{"#928374", "#BDAE93"},
		border:             [2]string{"#D5C4A1", "#504945"},
		selectedBackground: [2]string{"#F2E5BC", "#32302F"},
		subtleBackground:   [2]string{"#FBF1C7", "#282828"},
	}
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for the dashboard and CLI output.
type Theme struct {
	Name   string
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Table styles
	TableHeader        lipgloss.Style
	TableRow           lipgloss.Style
	TableBorder        lipgloss.Style
	UseAlternatingRows bool

	// Container styles
	Box lipgloss.Style

	// Shell chrome
	HeaderBar     lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	SidebarCursor lipgloss.Style

	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": func() Colors { return adaptive(kanagawa) },
	"gruvbox":  func() Colors { return adaptive(gruvbox) },
	"terminal": newTerminalColors,
}

// DefaultTheme is the theme used by every component.
var DefaultTheme = NewThemeWithName(getThemeName())

// NewThemeWithName constructs a theme from a palette name. Unknown names fall
// back to kanagawa.
func NewThemeWithName(name string) *Theme {
	key := normalizeThemeName(name)
	builder, ok := themeRegistry[key]
	if !ok {
		key = defaultThemeName
		builder = themeRegistry[key]
	}
	return newThemeFromColors(builder(), key)
}

// Configure re-derives DefaultTheme and the icon set from cfg. Commands call
// it after loading an explicit --config file.
func Configure(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if os.Getenv("KAKAPO_THEME") == "" {
		DefaultTheme = NewThemeWithName(cfg.TUI.Theme)
	}
	if os.Getenv("KAKAPO_ICONS") == "" {
		SetIcons(cfg.TUI.Icons)
	}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginBottom(1),

		Success: lipgloss.NewStyle().Foreground(colors.Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colors.Red).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colors.Cyan).Bold(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Faint(true),
		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colors.Border),
		TableRow: lipgloss.NewStyle(),
		TableBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border),
		// ANSI colors look different everywhere; stripes only for hex palettes.
		UseAlternatingRows: name != "terminal",

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(1, 2).
			Margin(1, 0),

		HeaderBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.LightText).
			Background(colors.SubtleBackground).
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colors.Border).
			Padding(0, 1),
		SidebarItem: lipgloss.NewStyle().
			Foreground(colors.MutedText),
		SidebarActive: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),
		SidebarCursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Highlight: lipgloss.NewStyle().Foreground(colors.Orange).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(colors.Violet).Bold(true),
	}
}

func adaptive(p palette) Colors {
	c := func(pair [2]string) lipgloss.TerminalColor {
		return lipgloss.AdaptiveColor{Light: pair[0], Dark: pair[1]}
	}
	return Colors{
		Green:              c(p.green),
		Yellow:             c(p.yellow),
		Red:                c(p.red),
		Orange:             c(p.orange),
		Cyan:               c(p.cyan),
		Violet:             c(p.violet),
		LightText:          c(p.lightText),
		MutedText:          c(p.mutedText),
		Border:             c(p.border),
		SelectedBackground: c(p.selectedBackground),
		SubtleBackground:   c(p.subtleBackground),
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color("2"),
		Yellow:             lipgloss.Color("3"),
		Red:                lipgloss.Color("1"),
		Orange:             lipgloss.Color("208"),
		Cyan:               lipgloss.Color("6"),
		Violet:             lipgloss.Color("5"),
		LightText:          lipgloss.Color("7"),
		MutedText:          lipgloss.Color("8"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("8"),
		SubtleBackground:   lipgloss.Color("0"),
	}
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

// getThemeName resolves KAKAPO_THEME, then tui.theme from the config.
func getThemeName() string {
	if theme := normalizeThemeName(os.Getenv("KAKAPO_THEME")); theme != "" {
		return theme
	}
	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil {
		return defaultThemeName
	}
	if theme := normalizeThemeName(cfg.TUI.Theme); theme != "" {
		return theme
	}
	return defaultThemeName
}
