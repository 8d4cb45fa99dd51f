package home

import (
	"fmt"

	"github.com/kakapo/kakapo/catalog"
)

// Tab selects which collaborator fills the content area.
type Tab int

const (
	TabEntities Tab = iota
	TabSettings
)

func (t Tab) String() string {
	switch t {
	case TabEntities:
		return "entities"
	case TabSettings:
		return "settings"
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

// ViewState is the shell's local state. Transitions return a new value and
// never touch the receiver's slice.
type ViewState struct {
	Tab Tab
	// Selections holds the enabled entity kinds in the order they were
	// turned on. It has no duplicates and may be empty.
	Selections []catalog.Kind
	// Compress hides the sidebar.
	Compress bool
}

// NewViewState returns the initial state: entities tab, tables selected,
// sidebar shown.
func NewViewState() ViewState {
	return ViewState{
		Tab:        TabEntities,
		Selections: []catalog.Kind{catalog.KindTable},
	}
}

// SetTab sets Tab. Any value is accepted.
func (s ViewState) SetTab(tab Tab) ViewState {
	s.Tab = tab
	return s
}

// SetEntitySelection removes kind if selected and appends it otherwise,
// and always switches to the entities tab.
func (s ViewState) SetEntitySelection(kind catalog.Kind) ViewState {
	next := make([]catalog.Kind, 0, len(s.Selections)+1)
	found := false
	for _, k := range s.Selections {
		if k == kind {
			found = true
			continue
		}
		next = append(next, k)
	}
	if !found {
		next = append(next, kind)
	}

	s.Selections = next
	s.Tab = TabEntities
	return s
}

// SwitchCompression flips Compress.
func (s ViewState) SwitchCompression() ViewState {
	s.Compress = !s.Compress
	return s
}

// Selected reports whether kind is in Selections.
func (s ViewState) Selected(kind catalog.Kind) bool {
	for _, k := range s.Selections {
		if k == kind {
			return true
		}
	}
	return false
}
