package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kakapo/kakapo/catalog"
	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "kakapo-cmd-")
	if err != nil {
		panic(err)
	}
	os.Setenv("KAKAPO_HOME", home)
	os.Setenv("KAKAPO_ICONS", "ascii")
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func catalogRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tables", "users.yml"), "name: users\ndescription: Registered users\n")
	writeFile(t, filepath.Join(root, "views", "recent_orders.yml"), "description: Last 30 days\n")
	writeFile(t, filepath.Join(root, "queries", "top_customers.sql"), "-- Customers by revenue\nSELECT 1;\n")
	return root
}

// execute runs the root command in an empty working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEntitiesJSON(t *testing.T) {
	root := catalogRoot(t)

	out, err := execute(t, "entities", "--catalog", root, "--json", "views", "table")
	require.NoError(t, err)

	var got []catalog.Entity
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "recent_orders", got[0].Name)
	assert.Equal(t, catalog.KindView, got[0].Kind)
	assert.Equal(t, "users", got[1].Name)
}

func TestEntitiesTable(t *testing.T) {
	root := catalogRoot(t)

	out, err := execute(t, "entities", "--catalog", root, "query")
	require.NoError(t, err)
	assert.Contains(t, out, "Queries (1)")
	assert.Contains(t, out, "top_customers")
	assert.NotContains(t, out, "users")
}

func TestEntitiesEmptySelectionIsEmptyArray(t *testing.T) {
	out, err := execute(t, "entities", "--catalog", t.TempDir(), "--json", "script")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestEntitiesUnknownKind(t *testing.T) {
	_, err := execute(t, "entities", "widgets")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownKind))
}

func TestConfigShowRequiresConfig(t *testing.T) {
	_, err := execute(t, "config", "show")
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kakapo.yml")
	writeFile(t, path, "name: shop\ntui:\n  theme: gruvbox\n")

	out, err := execute(t, "config", "show", "--json", "-c", path)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "shop", got["name"])
	assert.Equal(t, "gruvbox", got["tui"].(map[string]interface{})["theme"])
}

func TestConfigSchema(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"catalog"`)
	assert.True(t, json.Valid([]byte(out)))
}

func TestInitDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kakapo.yml")

	out, err := execute(t, "init", "--defaults", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kanagawa", cfg.TUI.Theme)
	assert.True(t, cfg.Catalog.WatchEnabled())

	_, err = execute(t, "init", "--defaults", "-o", path)
	assert.True(t, errors.Is(err, errors.ErrCodeFileExists))

	_, err = execute(t, "init", "--defaults", "--force", "-o", path)
	assert.NoError(t, err)
}

func TestBuildInitConfig(t *testing.T) {
	cfg := buildInitConfig(initAnswers{Name: " shop ", Root: "", Database: "data.db", Theme: "gruvbox", Icons: "ascii"})

	assert.Equal(t, "shop", cfg.Name)
	assert.Equal(t, ".", cfg.Catalog.Root)
	assert.Equal(t, "data.db", cfg.Catalog.Database)
	require.NotNil(t, cfg.Catalog.Watch)
	assert.False(t, *cfg.Catalog.Watch)
}

func TestWriteInitConfigRejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kakapo.yml")
	a := defaultAnswers("/tmp/shop")
	a.Theme = "neon"

	err := writeInitConfig(path, a, false)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
	assert.NoFileExists(t, path)
}

func TestCatalogFlags(t *testing.T) {
	cfg := config.Default()
	catalogFlags{root: "/data", database: "/data/app.db", noWatch: true}.apply(cfg)

	assert.Equal(t, "/data", cfg.Catalog.Root)
	assert.Equal(t, "/data/app.db", cfg.Catalog.Database)
	assert.False(t, cfg.Catalog.WatchEnabled())
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "kakapo dev")
}
