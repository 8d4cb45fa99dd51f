package keymap

import "github.com/charmbracelet/bubbles/key"

// SectionInfo is a serializable representation of a keybinding section.
type SectionInfo struct {
	Name     string        `json:"name"`
	Bindings []BindingInfo `json:"bindings"`
}

// BindingInfo is a serializable representation of a single keybinding.
type BindingInfo struct {
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
}

// ExportBinding converts a key.Binding to a BindingInfo.
func ExportBinding(b key.Binding) BindingInfo {
	return BindingInfo{
		Keys:        b.Keys(),
		Description: b.Help().Desc,
		Enabled:     b.Enabled(),
	}
}

// ExportSections converts sections to their serializable form, dropping
// sections with no enabled bindings.
func ExportSections(sections []Section) []SectionInfo {
	result := make([]SectionInfo, 0, len(sections))
	for _, s := range sections {
		if s.IsEmpty() {
			continue
		}
		info := SectionInfo{Name: s.Name}
		for _, b := range s.Enabled() {
			info.Bindings = append(info.Bindings, ExportBinding(b))
		}
		result = append(result, info)
	}
	return result
}
