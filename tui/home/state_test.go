package home

import (
	"testing"

	"github.com/kakapo/kakapo/catalog"
	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	s := NewViewState()
	assert.Equal(t, TabEntities, s.Tab)
	assert.Equal(t, []catalog.Kind{catalog.KindTable}, s.Selections)
	assert.False(t, s.Compress)
}

func TestToggleTwiceRestoresSelections(t *testing.T) {
	starts := []ViewState{
		NewViewState(),
		{Tab: TabSettings, Selections: []catalog.Kind{catalog.KindView, catalog.KindScript}},
		{Tab: TabSettings},
		{Selections: []catalog.Kind{catalog.KindQuery, catalog.KindTable, catalog.KindView, catalog.KindScript}, Compress: true},
	}
	for _, start := range starts {
		for _, kind := range catalog.AllKinds {
			t.Run(start.Tab.String()+"/"+kind.String(), func(t *testing.T) {
				got := start.SetEntitySelection(kind).SetEntitySelection(kind)
				assert.ElementsMatch(t, start.Selections, got.Selections)
				assert.Equal(t, TabEntities, got.Tab)
				assert.Equal(t, start.Compress, got.Compress)
			})
		}
	}
}

func TestSetEntitySelectionAlwaysShowsEntities(t *testing.T) {
	s := NewViewState().SetTab(TabSettings)
	assert.Equal(t, TabEntities, s.SetEntitySelection(catalog.KindView).Tab)
	assert.Equal(t, TabEntities, s.SetEntitySelection(catalog.KindTable).Tab)
}

func TestSetEntitySelectionDoesNotMutateReceiver(t *testing.T) {
	s := ViewState{Selections: make([]catalog.Kind, 1, 4)}
	s.Selections[0] = catalog.KindTable

	_ = s.SetEntitySelection(catalog.KindView)
	_ = s.SetEntitySelection(catalog.KindTable)

	assert.Equal(t, []catalog.Kind{catalog.KindTable}, s.Selections)
}

func TestSwitchCompressionIsInvolutive(t *testing.T) {
	s := NewViewState()
	assert.True(t, s.SwitchCompression().Compress)
	assert.Equal(t, s, s.SwitchCompression().SwitchCompression())

	settings := s.SetTab(TabSettings)
	assert.Equal(t, TabSettings, settings.SwitchCompression().Tab, "compress is independent of tab")
}

func TestSelectionScenario(t *testing.T) {
	s := NewViewState()

	s = s.SetEntitySelection(catalog.KindView)
	assert.Equal(t, []catalog.Kind{catalog.KindTable, catalog.KindView}, s.Selections)

	s = s.SetEntitySelection(catalog.KindTable)
	assert.Equal(t, []catalog.Kind{catalog.KindView}, s.Selections)

	s = s.SetTab(TabSettings)
	assert.Equal(t, TabSettings, s.Tab)
	assert.Equal(t, []catalog.Kind{catalog.KindView}, s.Selections)
}

func TestDeselectUntilEmpty(t *testing.T) {
	s := NewViewState().SetEntitySelection(catalog.KindTable)
	assert.Empty(t, s.Selections)
	assert.Equal(t, TabEntities, s.Tab)
}

func TestSetTabAcceptsAnyValue(t *testing.T) {
	assert.Equal(t, Tab(42), NewViewState().SetTab(Tab(42)).Tab)
	assert.Equal(t, "tab(42)", Tab(42).String())
}
