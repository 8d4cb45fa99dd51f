package cmd

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kakapo/kakapo/catalog"
	"github.com/kakapo/kakapo/cli"
	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/logging"
	"github.com/kakapo/kakapo/state"
	"github.com/kakapo/kakapo/tui"
	"github.com/kakapo/kakapo/tui/home"
	"github.com/kakapo/kakapo/tui/settings"
	"github.com/kakapo/kakapo/tui/theme"
	"github.com/kakapo/kakapo/version"
	"github.com/spf13/cobra"
)

type catalogFlags struct {
	root     string
	database string
	noWatch  bool
}

func (f catalogFlags) apply(cfg *config.Config) {
	if f.root != "" {
		cfg.Catalog.Root = f.root
	}
	if f.database != "" {
		cfg.Catalog.Database = f.database
	}
	if f.noWatch {
		watch := false
		cfg.Catalog.Watch = &watch
	}
}

func NewHomeCmd() *cobra.Command {
	var flags catalogFlags

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Open the dashboard",
		Long: `Open the dashboard. The sidebar toggles which entity kinds are listed
and opens the settings panel; ctrl+b collapses it.

Examples:
  kakapo home
  kakapo home --catalog ./warehouse --no-watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfigOrDefault(cmd)
			if err != nil {
				return err
			}
			flags.apply(cfg)
			return runHome(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&flags.root, "catalog", "", "Catalog root directory (overrides catalog.root)")
	cmd.Flags().StringVar(&flags.database, "database", "", "SQLite database to list (overrides catalog.database)")
	cmd.Flags().BoolVar(&flags.noWatch, "no-watch", false, "Do not reload when catalog files change")
	return cmd
}

func runHome(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := home.ValidateKeybindings(cfg); err != nil {
		return err
	}
	theme.Configure(cfg)
	tui.InitializeTUI()

	logger := logging.NewLogger("home")
	c := catalog.FromConfig(cfg.Catalog)
	for _, src := range c.Sources() {
		logger.WithField("source", src.Name()).Debug("Catalog source configured")
	}

	var reloads <-chan catalog.Reloaded
	if cfg.Catalog.WatchEnabled() {
		w, err := catalog.NewWatcher(ctx, c)
		if err != nil {
			logger.WithError(err).Warn("Catalog watcher disabled")
		} else {
			defer w.Close()
			reloads = w.Events()
		}
	}

	info := settings.FromConfig(cfg)
	info.LogLevel = logger.Logger.GetLevel().String()
	info.Version = version.GetInfo().Version

	// The dashboard owns the terminal.
	previous := logging.SetGlobalOutput(io.Discard)
	defer logging.SetGlobalOutput(previous)

	opts := home.Options{
		Context:  ctx,
		Config:   cfg,
		Catalog:  c,
		Reloads:  reloads,
		Settings: info,
		Logger:   logger,
	}

	var store *state.Store
	if cfg.TUI.RememberViewEnabled() {
		store = state.Open(projectDir(cfg))
		if saved, ok, err := home.LoadViewState(store); err != nil {
			logger.WithError(err).Warn("Ignoring saved view state")
		} else if ok {
			opts.Initial = &saved
		}
	}

	p := tea.NewProgram(home.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}

	if m, ok := final.(home.Model); ok && store != nil {
		if err := home.SaveViewState(store, m.State()); err != nil {
			logger.WithError(err).Warn("Could not save view state")
		}
	}
	return nil
}

// projectDir is the directory of the project config, or the catalog root
// when running without one.
func projectDir(cfg *config.Config) string {
	if cfg.Path != "" {
		return filepath.Dir(cfg.Path)
	}
	return cfg.Catalog.Root
}
