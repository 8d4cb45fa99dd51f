package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/kakapo/kakapo/cli"
	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/errors"
	"github.com/spf13/cobra"
)

// initAnswers are the wizard's fields.
type initAnswers struct {
	Name     string
	Root     string
	Database string
	Theme    string
	Icons    string
	Watch    bool
}

func defaultAnswers(dir string) initAnswers {
	return initAnswers{
		Name:  filepath.Base(dir),
		Root:  ".",
		Theme: "kanagawa",
		Icons: "nerd",
		Watch: true,
	}
}

func NewInitCmd() *cobra.Command {
	var (
		force    bool
		defaults bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a kakapo.yml",
		Long: `Walk through the catalog root, an optional SQLite database and the
theme, then write kakapo.yml in the current directory.

Examples:
  kakapo init
  kakapo init --defaults --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = filepath.Join(cwd, "kakapo.yml")
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return errors.FileExists(path)
				}
			}

			answers := defaultAnswers(cwd)
			if !defaults {
				if err := runInitWizard(&answers); err != nil {
					return err
				}
			}

			if err := writeInitConfig(path, answers, force); err != nil {
				return err
			}
			cli.GetLogger(cmd).WithField("path", path).Debug("Wrote configuration")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing kakapo.yml")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Skip the wizard and write the defaults")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of ./kakapo.yml")
	return cmd
}

func runInitWizard(a *initAnswers) error {
	themes := make([]huh.Option[string], len(config.Themes))
	for i, name := range config.Themes {
		themes[i] = huh.NewOption(name, name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Shown in the dashboard header").
				Value(&a.Name),
			huh.NewInput().
				Title("Catalog root").
				Description("Directory holding tables/, views/, queries/ and scripts/").
				Placeholder(".").
				Value(&a.Root),
			huh.NewInput().
				Title("SQLite database").
				Description("Optional; its tables and views are listed too").
				Value(&a.Database),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&a.Theme),
			huh.NewSelect[string]().
				Title("Icons").
				Options(
					huh.NewOption("Nerd Font glyphs", "nerd"),
					huh.NewOption("Plain ASCII", "ascii"),
				).
				Value(&a.Icons),
			huh.NewConfirm().
				Title("Reload on file changes").
				Affirmative("Yes").
				Negative("No").
				Value(&a.Watch),
		),
	).WithTheme(huh.ThemeCatppuccin())

	return form.Run()
}

// buildInitConfig turns wizard answers into a config. Only non-default
// values are set so the written file stays short.
func buildInitConfig(a initAnswers) *config.Config {
	cfg := &config.Config{
		Version: "1.0",
		Name:    strings.TrimSpace(a.Name),
		Catalog: config.CatalogConfig{
			Root:     strings.TrimSpace(a.Root),
			Database: strings.TrimSpace(a.Database),
		},
		TUI: config.TUIConfig{
			Theme: a.Theme,
			Icons: a.Icons,
		},
	}
	if cfg.Catalog.Root == "" {
		cfg.Catalog.Root = "."
	}
	if !a.Watch {
		watch := false
		cfg.Catalog.Watch = &watch
	}
	return cfg
}

// writeInitConfig validates the answers and writes them to path.
func writeInitConfig(path string, a initAnswers, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.FileExists(path)
		}
	}

	return config.Write(path, buildInitConfig(a))
}
