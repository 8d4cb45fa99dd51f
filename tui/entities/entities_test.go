package entities

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kakapo/kakapo/catalog"
	"github.com/kakapo/kakapo/tui/keymap"
	"github.com/stretchr/testify/assert"
)

func entity(kind catalog.Kind, name string) catalog.Entity {
	return catalog.Entity{
		ID:       catalog.EntityID(kind, catalog.SourceFiles, name),
		Kind:     kind,
		Name:     name,
		Source:   catalog.SourceFiles,
		Location: kind.Dir() + "/" + name,
	}
}

func fixture() []catalog.Entity {
	return []catalog.Entity{
		entity(catalog.KindTable, "users"),
		entity(catalog.KindTable, "orders"),
		entity(catalog.KindView, "recent_orders"),
		entity(catalog.KindQuery, "top_customers"),
	}
}

func TestRenderEmptySelection(t *testing.T) {
	assert.Contains(t, Render(fixture(), Props{}, 80), NoSelection)
}

func TestRenderSectionsInSelectOrder(t *testing.T) {
	out := Render(fixture(), Props{Select: []catalog.Kind{catalog.KindView, catalog.KindTable}}, 100)

	views := strings.Index(out, "Views (1)")
	tables := strings.Index(out, "Tables (2)")
	assert.True(t, views >= 0 && tables > views, "views section precedes tables:\n%s", out)
	assert.Contains(t, out, "recent_orders")
	assert.Contains(t, out, "users")
	assert.NotContains(t, out, "top_customers")
}

func TestRenderEmptyKind(t *testing.T) {
	out := Render(fixture(), Props{Select: []catalog.Kind{catalog.KindScript}}, 80)
	assert.Contains(t, out, "Scripts (0)")
	assert.Contains(t, out, "no scripts found")
}

func TestViewBeforeLoad(t *testing.T) {
	m := New(keymap.NewBase())
	assert.Contains(t, m.View(Props{Select: []catalog.Kind{catalog.KindTable}}), "Loading catalog")
}

func TestViewShowsErrorAndKeepsSnapshot(t *testing.T) {
	m := New(keymap.NewBase())
	m.SetEntities(fixture())
	m.SetError(fmt.Errorf("database locked"))

	out := m.View(Props{Select: []catalog.Kind{catalog.KindTable}})
	assert.Contains(t, out, "database locked")
	assert.Contains(t, out, "users")

	m.SetEntities(fixture())
	assert.NotContains(t, m.View(Props{Select: []catalog.Kind{catalog.KindTable}}), "database locked")
}

func TestPageDownScrolls(t *testing.T) {
	var many []catalog.Entity
	for i := 0; i < 50; i++ {
		many = append(many, entity(catalog.KindTable, fmt.Sprintf("t%02d", i)))
	}
	m := New(keymap.NewBase())
	m.SetEntities(many)
	m.SetSize(80, 10)
	props := Props{Select: []catalog.Kind{catalog.KindTable}}

	top := m.View(props)
	assert.Contains(t, top, "Tables (50)")

	m.Sync(props)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.NotContains(t, m.View(props), "Tables (50)")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Contains(t, m.View(props), "Tables (50)")
}
