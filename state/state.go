// Package state stores small per-project values between runs in
// .kakapo/state.yml next to the project's kakapo.yml.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// State is a generic key/value map so any command can keep its own keys.
type State map[string]interface{}

// Store reads and writes one state file.
type Store struct {
	path string
}

// Open returns the store for the project rooted at dir.
func Open(dir string) *Store {
	return &Store{path: filepath.Join(dir, ".kakapo", "state.yml")}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state. A missing file is an empty state.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(State), nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	if st == nil {
		st = make(State)
	}
	return st, nil
}

// Save replaces the state file with st.
func (s *Store) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Update loads the state, applies fn and saves the result.
func (s *Store) Update(fn func(State)) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	fn(st)
	return s.Save(st)
}

// GetString returns key as a string, or "" when missing or of another type.
func (st State) GetString(key string) string {
	v, _ := st[key].(string)
	return v
}

// GetBool returns key as a bool; ok is false when missing or of another type.
func (st State) GetBool(key string) (value, ok bool) {
	value, ok = st[key].(bool)
	return value, ok
}

// GetStrings returns key as a string slice. YAML decodes lists as
// []interface{}; non-string items are skipped.
func (st State) GetStrings(key string) ([]string, bool) {
	switch v := st[key].(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}
