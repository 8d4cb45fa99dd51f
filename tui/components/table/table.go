// Package table renders themed lipgloss tables for the dashboard panes.
package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/kakapo/kakapo/tui/theme"
)

// Builder accumulates headers and rows and applies the active theme on Build.
type Builder struct {
	headers  []string
	rows     [][]string
	width    int
	bordered bool
	striped  bool
}

// NewBuilder returns a bordered builder that stripes rows when the theme does.
func NewBuilder() *Builder {
	return &Builder{
		bordered: true,
		striped:  theme.DefaultTheme.UseAlternatingRows,
	}
}

func (b *Builder) WithBorder(bordered bool) *Builder {
	b.bordered = bordered
	return b
}

func (b *Builder) WithAlternateRows(striped bool) *Builder {
	b.striped = striped
	return b
}

func (b *Builder) WithHeaders(headers ...string) *Builder {
	b.headers = headers
	return b
}

func (b *Builder) WithRows(rows ...[]string) *Builder {
	b.rows = append(b.rows, rows...)
	return b
}

// WithWidth caps the rendered width; lipgloss shrinks columns to fit.
// Non-positive widths leave the table at its natural size.
func (b *Builder) WithWidth(width int) *Builder {
	b.width = width
	return b
}

// Build assembles the lipgloss table.
func (b *Builder) Build() *ltable.Table {
	th := theme.DefaultTheme

	t := ltable.New().Rows(b.rows...).StyleFunc(b.cellStyle(th))
	if len(b.headers) > 0 {
		t = t.Headers(b.headers...)
	}
	if b.width > 0 {
		t = t.Width(b.width)
	}

	if !b.bordered {
		// The bottom edge stays on, drawn blank; without it lipgloss
		// drops the last row of a headerless table.
		return t.
			Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderLeft(false).BorderRight(false).
			BorderHeader(false).BorderColumn(false)
	}
	return t.
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(th.Colors.Border))
}

func (b *Builder) cellStyle(th *theme.Theme) ltable.StyleFunc {
	striped := b.striped
	return func(row, _ int) lipgloss.Style {
		switch {
		case row == ltable.HeaderRow:
			return th.TableHeader.Padding(0, 1)
		case striped && row%2 == 1:
			return th.TableRow.Padding(0, 1).Background(th.Colors.SubtleBackground)
		default:
			return th.TableRow.Padding(0, 1)
		}
	}
}

// StatusTable renders label/value pairs without borders. Items with fewer
// than two columns are skipped.
func StatusTable(items [][]string) string {
	b := NewBuilder().WithBorder(false).WithAlternateRows(false)
	for _, item := range items {
		if len(item) < 2 {
			continue
		}
		b.WithRows([]string{theme.DefaultTheme.Muted.Render(item[0] + ":"), item[1]})
	}
	return b.Build().String()
}
