package home

import (
	"github.com/kakapo/kakapo/tui/entities"
)

// renderSelection picks the content for the active tab. An unknown tab
// renders nothing and is logged.
func (m Model) renderSelection() string {
	switch m.state.Tab {
	case TabEntities:
		return m.entities.View(m.entitiesProps())
	case TabSettings:
		return m.settings.View()
	default:
		m.logger.WithField("tab", m.state.Tab.String()).Warn("No view for tab, rendering empty content")
		return ""
	}
}

func (m Model) entitiesProps() entities.Props {
	return entities.Props{Select: m.state.Selections}
}
