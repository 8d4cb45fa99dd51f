package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kakapo/kakapo/catalog"
	"github.com/kakapo/kakapo/cli"
	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/tui/entities"
	"github.com/kakapo/kakapo/tui/theme"
	"github.com/spf13/cobra"
)

const defaultTableWidth = 100

func NewEntitiesCmd() *cobra.Command {
	var flags catalogFlags

	cmd := &cobra.Command{
		Use:     "entities [kind...]",
		Aliases: []string{"ls"},
		Short:   "List catalog entities",
		Long: `List the catalog, grouped by kind in the order given. Kinds are
table, view, query and script (plurals work too); all kinds are listed by
default.

Examples:
  kakapo entities
  kakapo entities views tables
  kakapo entities script --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := catalog.AllKinds
			if len(args) > 0 {
				parsed, err := catalog.ParseKinds(args)
				if err != nil {
					return err
				}
				kinds = parsed
			}

			cfg, err := cli.LoadConfigOrDefault(cmd)
			if err != nil {
				return err
			}
			flags.apply(cfg)
			theme.Configure(cfg)

			opts := cli.GetOptions(cmd)
			return listEntities(cmd.Context(), cmd.OutOrStdout(), cfg, kinds, opts.JSONOutput, cli.TerminalWidth(defaultTableWidth))
		},
	}

	cmd.Flags().StringVar(&flags.root, "catalog", "", "Catalog root directory (overrides catalog.root)")
	cmd.Flags().StringVar(&flags.database, "database", "", "SQLite database to list (overrides catalog.database)")
	return cmd
}

func listEntities(ctx context.Context, w io.Writer, cfg *config.Config, kinds []catalog.Kind, asJSON bool, width int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	all, err := catalog.FromConfig(cfg.Catalog).Load(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		selected := catalog.Filter(all, kinds)
		if selected == nil {
			selected = []catalog.Entity{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(selected)
	}

	_, err = fmt.Fprintln(w, entities.Render(all, entities.Props{Select: kinds}, width))
	return err
}
