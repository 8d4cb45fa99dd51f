// Package cmd holds the kakapo subcommands.
package cmd

import (
	"github.com/kakapo/kakapo/cli"
	"github.com/kakapo/kakapo/pkg/profiling"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the kakapo command tree. Running it without a
// subcommand opens the dashboard.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"kakapo",
		"Browse the tables, views, queries and scripts of a data project",
	)
	cli.SetVersionTemplate(root)
	profiling.NewCobraProfiler().Attach(root)

	home := NewHomeCmd()
	root.Flags().AddFlagSet(home.Flags())
	root.RunE = home.RunE

	root.AddCommand(home)
	root.AddCommand(NewEntitiesCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(NewInitCmd())
	root.AddCommand(cli.NewVersionCommand("kakapo"))
	return root
}
