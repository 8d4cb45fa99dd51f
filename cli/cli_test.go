package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kakapo/kakapo/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "kakapo-cli-")
	if err != nil {
		panic(err)
	}
	os.Setenv("KAKAPO_HOME", home)
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

func newRoot(run func(cmd *cobra.Command)) *cobra.Command {
	root := NewStandardCommand("kakapo", "Browse a data catalog")
	sub := &cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			run(cmd)
			return nil
		},
	}
	root.AddCommand(sub)
	return root
}

func TestGetOptionsReadsPersistentFlags(t *testing.T) {
	var got CommandOptions
	root := newRoot(func(cmd *cobra.Command) { got = GetOptions(cmd) })
	root.SetArgs([]string{"probe", "-v", "--json", "-c", "custom.yml"})

	require.NoError(t, root.Execute())
	assert.Equal(t, CommandOptions{ConfigFile: "custom.yml", Verbose: true, JSONOutput: true}, got)
}

func TestLoadConfigOrDefault(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	root := newRoot(func(cmd *cobra.Command) {
		cfg, err := LoadConfigOrDefault(cmd)
		require.NoError(t, err)
		assert.Equal(t, "kanagawa", cfg.TUI.Theme)
		assert.NotEmpty(t, cfg.Catalog.Root)
	})
	root.SetArgs([]string{"probe"})
	require.NoError(t, root.Execute())
}

func TestLoadConfigExplicitPathMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "kakapo.yml")

	var err error
	root := newRoot(func(cmd *cobra.Command) { _, err = LoadConfigOrDefault(cmd) })
	root.SetArgs([]string{"probe", "--config", missing})
	require.NoError(t, root.Execute())

	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", errors.ConfigNotFound("/tmp/x"), "kakapo init"},
		{"unknown kind", errors.UnknownKind("widget"), "Unknown entity kind 'widget'"},
		{"exists", errors.FileExists("kakapo.yml"), "kakapo.yml already exists"},
		{"catalog", errors.CatalogLoad("files:/data", fmt.Errorf("boom")), "Could not read the catalog"},
		{"wrapped", fmt.Errorf("loading: %w", errors.UnknownKind("x")), "Unknown entity kind 'x'"},
		{"invalid", errors.ConfigInvalid("/srv is a directory"), "Invalid configuration: /srv is a directory"},
		{"plain", fmt.Errorf("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			h := &ErrorHandler{Out: &out}
			assert.Equal(t, tt.err, h.Handle(tt.err))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestErrorHandlerVerbosePrintsDetails(t *testing.T) {
	var out bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &out}
	_ = h.Handle(errors.FileExists("kakapo.yml"))

	assert.Contains(t, out.String(), "Error details:")
	assert.Contains(t, out.String(), `"FILE_EXISTS"`)
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 15)
	}
	assert.Equal(t, "short\nlines", wrapText("short\nlines", 15))
}

func TestSplitExamples(t *testing.T) {
	desc, ex := splitExamples("Lists entities.\n\nExamples:\n  kakapo entities table")
	assert.Equal(t, "Lists entities.", desc)
	assert.Equal(t, "kakapo entities table", ex)

	desc, ex = splitExamples("No examples here")
	assert.Equal(t, "No examples here", desc)
	assert.Empty(t, ex)
}

func TestStyledHelp(t *testing.T) {
	root := newRoot(func(*cobra.Command) {})
	root.Commands()[0].Short = "Probe things"
	ApplyStyledHelpRecursive(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	help := out.String()
	assert.Contains(t, help, "KAKAPO")
	assert.Contains(t, help, "COMMANDS")
	assert.Contains(t, help, "probe")
	assert.Contains(t, help, "Probe things")
}

func TestVersionCommandJSON(t *testing.T) {
	root := NewStandardCommand("kakapo", "")
	root.AddCommand(NewVersionCommand("kakapo"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), `"version": "dev"`)
}

func TestPrintErrorPointsAtHelp(t *testing.T) {
	root := NewStandardCommand("kakapo", "")
	sub := &cobra.Command{Use: "entities"}
	root.AddCommand(sub)

	var errOut bytes.Buffer
	root.SetErr(&errOut)
	PrintError(sub, fmt.Errorf("unknown flag: --bogus"))

	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "unknown flag: --bogus")
	assert.Contains(t, errOut.String(), "Run 'kakapo entities --help' for usage.")
}

func TestVersionCommandMarksDevBuilds(t *testing.T) {
	root := NewStandardCommand("kakapo", "")
	root.AddCommand(NewVersionCommand("kakapo"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "kakapo dev (development build)")
	assert.Contains(t, out.String(), "Commit:")
}
