package home

import (
	"strings"

	"github.com/kakapo/kakapo/catalog"
	"github.com/kakapo/kakapo/tui/theme"
)

const (
	sidebarInnerWidth = 14
	// sidebarTopMargin rows precede the first entry.
	sidebarTopMargin = 1
	// settingsGap rows separate Settings from the filters.
	settingsGap = 2
)

// sidebarEntry is one fixed sidebar item. Filter entries toggle a kind;
// the settings entry switches tab.
type sidebarEntry struct {
	label    string
	icon     func() string
	kind     catalog.Kind
	settings bool
}

var sidebarEntries = []sidebarEntry{
	{label: "Tables", icon: func() string { return theme.IconTable }, kind: catalog.KindTable},
	{label: "Views", icon: func() string { return theme.IconView }, kind: catalog.KindView},
	{label: "Queries", icon: func() string { return theme.IconQuery }, kind: catalog.KindQuery},
	{label: "Scripts", icon: func() string { return theme.IconScript }, kind: catalog.KindScript},
	{label: "Settings", icon: func() string { return theme.IconSettings }, settings: true},
}

// active is membership for filters and the tab for settings.
func (e sidebarEntry) active(s ViewState) bool {
	if e.settings {
		return s.Tab == TabSettings
	}
	return s.Selected(e.kind)
}

// gapFor drops the settings gap when height cannot hold it.
func gapFor(height int) int {
	if height < sidebarTopMargin+len(sidebarEntries)+settingsGap {
		return 0
	}
	return settingsGap
}

// entryRow returns the sidebar row of entry i in a sidebar of height rows.
func entryRow(i, height int) int {
	row := sidebarTopMargin + i
	if sidebarEntries[i].settings {
		row += gapFor(height)
	}
	return row
}

// entryAt maps a sidebar row to an entry index. Rows past height are
// clipped and never match.
func entryAt(row, height int) (int, bool) {
	if row >= height {
		return 0, false
	}
	for i := range sidebarEntries {
		if entryRow(i, height) == row {
			return i, true
		}
	}
	return 0, false
}

// visibleEntries counts the entries that fit in height rows.
func visibleEntries(height int) int {
	n := 0
	for i := range sidebarEntries {
		if entryRow(i, height) < height {
			n++
		}
	}
	return n
}

// sidebarWidth is the rendered width including padding and border.
func sidebarWidth() int {
	return sidebarInnerWidth + theme.DefaultTheme.Sidebar.GetHorizontalFrameSize()
}

// renderSidebar draws the entries with the cursor marker, filling height rows.
func renderSidebar(s ViewState, cursor, height int) string {
	t := theme.DefaultTheme
	rows := make([]string, entryRow(len(sidebarEntries)-1, height)+1)

	for i, e := range sidebarEntries {
		marker := " "
		if i == cursor {
			marker = t.SidebarCursor.Render(theme.IconArrow)
		}
		style := t.SidebarItem
		if e.active(s) {
			style = t.SidebarActive
		}
		rows[entryRow(i, height)] = marker + " " + style.Render(e.icon()+" "+e.label)
	}

	for len(rows) < height {
		rows = append(rows, "")
	}
	return t.Sidebar.
		Width(sidebarInnerWidth + t.Sidebar.GetHorizontalPadding()).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(rows, "\n"))
}
