package home

import (
	"github.com/kakapo/kakapo/catalog"
	"github.com/kakapo/kakapo/state"
)

const (
	selectionsKey = "home.selections"
	compressKey   = "home.compress"
)

// LoadViewState returns the view saved by SaveViewState. The tab always
// starts on entities; unknown kind names are dropped. ok is false when
// nothing was saved.
func LoadViewState(store *state.Store) (ViewState, bool, error) {
	st, err := store.Load()
	if err != nil {
		return ViewState{}, false, err
	}

	names, hasSelections := st.GetStrings(selectionsKey)
	compress, hasCompress := st.GetBool(compressKey)
	if !hasSelections && !hasCompress {
		return ViewState{}, false, nil
	}

	s := NewViewState()
	if hasSelections {
		s.Selections = []catalog.Kind{}
		seen := make(map[catalog.Kind]bool)
		for _, name := range names {
			kind, err := catalog.ParseKind(name)
			if err != nil || seen[kind] {
				continue
			}
			seen[kind] = true
			s.Selections = append(s.Selections, kind)
		}
	}
	s.Compress = compress
	return s, true, nil
}

// SaveViewState records the selections and compress flag of s.
func SaveViewState(store *state.Store, s ViewState) error {
	names := make([]string, len(s.Selections))
	for i, k := range s.Selections {
		names[i] = k.String()
	}
	return store.Update(func(st state.State) {
		st[selectionsKey] = names
		st[compressKey] = s.Compress
	})
}
