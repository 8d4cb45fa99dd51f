package home

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kakapo/kakapo/catalog"
)

// switchCompressionMsg is produced by the header's toggle.
type switchCompressionMsg struct{}

func switchCompression() tea.Msg { return switchCompressionMsg{} }

// catalogLoadedMsg carries the result of an explicit load.
type catalogLoadedMsg struct {
	entities []catalog.Entity
	err      error
}

// catalogReloadedMsg carries a watcher reload.
type catalogReloadedMsg catalog.Reloaded

func loadCatalog(ctx context.Context, c *catalog.Catalog) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		entities, err := c.Load(ctx)
		return catalogLoadedMsg{entities: entities, err: err}
	}
}

// waitForReload blocks on the next watcher event. The model re-issues it
// after each one.
func waitForReload(reloads <-chan catalog.Reloaded) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-reloads
		if !ok {
			return nil
		}
		return catalogReloadedMsg(r)
	}
}
