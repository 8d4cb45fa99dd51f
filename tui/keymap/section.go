package keymap

import "github.com/charmbracelet/bubbles/key"

// Section names used by the help overlay and the settings panel. Sections
// are listed in the order a keymap returns them, not by name.
const (
	SectionNavigation = "Navigation"
	SectionActions    = "Actions"
	SectionFilters    = "Filters"
	SectionView       = "View"
	SectionSystem     = "System"
)

// Section groups bindings under a heading.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is a keymap that can describe itself for help output.
type SectionedKeyMap interface {
	Sections() []Section
}

func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

func NavigationSection(bindings ...key.Binding) Section {
	return NewSection(SectionNavigation, bindings...)
}

func ActionsSection(bindings ...key.Binding) Section {
	return NewSection(SectionActions, bindings...)
}

func FiltersSection(bindings ...key.Binding) Section {
	return NewSection(SectionFilters, bindings...)
}

func ViewSection(bindings ...key.Binding) Section {
	return NewSection(SectionView, bindings...)
}

func SystemSection(bindings ...key.Binding) Section {
	return NewSection(SectionSystem, bindings...)
}

// Enabled returns the bindings that are not disabled. Bindings disabled
// through an empty override are hidden from help.
func (s Section) Enabled() []key.Binding {
	enabled := make([]key.Binding, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if b.Enabled() {
			enabled = append(enabled, b)
		}
	}
	return enabled
}

func (s Section) IsEmpty() bool {
	for _, b := range s.Bindings {
		if b.Enabled() {
			return false
		}
	}
	return true
}
