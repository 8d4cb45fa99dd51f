package cli

import (
	"encoding/json"
	"fmt"

	"github.com/kakapo/kakapo/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand prints the build information, as JSON with --json.
func NewVersionCommand(componentName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Print the version of %s", componentName),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			if GetOptions(cmd).JSONOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			name := componentName + " " + info.Version
			if info.IsDev() {
				name += " (development build)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", name, info)
			return nil
		},
	}
}

// SetVersionTemplate makes --version print the same short form.
func SetVersionTemplate(cmd *cobra.Command) {
	info := version.GetInfo()
	cmd.Version = info.Version
	cmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}}\n  Commit:    %s\n  Built:     %s\n  Platform:  %s\n",
		info.Commit, info.BuildDate, info.Platform))
}
