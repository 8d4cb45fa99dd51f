package config

import (
	"fmt"
	"strings"

	"github.com/kakapo/kakapo/errors"
	"github.com/moby/patternmatcher"
)

// Validate performs semantic checks the schema cannot express.
func (c *Config) Validate() error {
	if !contains(Themes, c.TUI.Theme) {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("unknown theme '%s' (expected one of: %s)", c.TUI.Theme, strings.Join(Themes, ", "))).
			WithDetail("theme", c.TUI.Theme)
	}
	if !contains(IconSet, c.TUI.Icons) {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("unknown icon set '%s' (expected one of: %s)", c.TUI.Icons, strings.Join(IconSet, ", "))).
			WithDetail("icons", c.TUI.Icons)
	}

	if _, err := patternmatcher.New(c.Catalog.Ignore); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid catalog.ignore pattern").
			WithDetail("ignore", c.Catalog.Ignore)
	}

	for action, keys := range c.TUI.Keybindings {
		if len(keys) == 0 {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("keybinding '%s' has no keys", action)).
				WithDetail("action", action)
		}
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
