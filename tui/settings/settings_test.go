package settings

import (
	"testing"

	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/tui/keymap"
	"github.com/stretchr/testify/assert"
)

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Path = "/srv/kakapo.yml"
	cfg.Catalog.Database = "/srv/app.db"
	cfg.Catalog.PostgresDSN = "postgres://u:secret@h/db"
	cfg.Catalog.Ignore = []string{"*.bak"}
	off := false
	cfg.Catalog.Watch = &off

	info := FromConfig(cfg)
	assert.Equal(t, "/srv/kakapo.yml", info.ConfigPath)
	assert.Equal(t, "/srv/app.db", info.Database)
	assert.True(t, info.Postgres)
	assert.False(t, info.Watch)
	assert.Equal(t, "kanagawa", info.Theme)

	assert.Equal(t, ".", FromConfig(nil).CatalogRoot)
}

func TestViewShowsConfigAndKeys(t *testing.T) {
	info := FromConfig(config.Default())
	info.Version = "v1.2.3"
	info.LogLevel = "debug"
	info.Postgres = true

	out := New(info, keymap.NewBase().Sections()).View()

	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "Catalog root:")
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "debug")
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "ctrl+u / pgup")
	assert.NotContains(t, out, "secret")
}

func TestViewIsStatic(t *testing.T) {
	m := New(FromConfig(nil), nil)
	assert.Equal(t, m.View(), m.View())
}

func TestViewKeepsLastBindingOfEachSection(t *testing.T) {
	info := FromConfig(nil)
	info.Version = "v0.9.0"
	out := New(info, keymap.NewBase().Sections()).View()

	assert.Contains(t, out, "v0.9.0", "last status row")
	assert.Contains(t, out, "reload catalog", "last actions binding")
	assert.Contains(t, out, "quit", "last system binding")
}
