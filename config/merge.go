package config

// mergeConfigs merges override configuration into base
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Name != "" {
		result.Name = override.Name
	}
	if override.Path != "" {
		result.Path = override.Path
	}

	result.Catalog = mergeCatalog(base.Catalog, override.Catalog)
	result.TUI = mergeTUI(base.TUI, override.TUI)

	if override.Extensions != nil {
		merged := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			merged[key] = value
		}
		for key, value := range override.Extensions {
			// One level of map merging, so a project can override logging.level
			// without dropping the global logging.file.
			if baseMap, ok := merged[key].(map[string]interface{}); ok {
				if overrideMap, ok := value.(map[string]interface{}); ok {
					m := make(map[string]interface{}, len(baseMap)+len(overrideMap))
					for k, v := range baseMap {
						m[k] = v
					}
					for k, v := range overrideMap {
						m[k] = v
					}
					merged[key] = m
					continue
				}
			}
			merged[key] = value
		}
		result.Extensions = merged
	}

	return &result
}

func mergeCatalog(base, override CatalogConfig) CatalogConfig {
	result := base

	if override.Root != "" {
		result.Root = override.Root
	}
	if override.Database != "" {
		result.Database = override.Database
	}
	if override.PostgresDSN != "" {
		result.PostgresDSN = override.PostgresDSN
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.Watch != nil {
		result.Watch = override.Watch
	}

	return result
}

func mergeTUI(base, override TUIConfig) TUIConfig {
	result := base

	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Icons != "" {
		result.Icons = override.Icons
	}
	if override.RememberView != nil {
		result.RememberView = override.RememberView
	}
	if len(override.Keybindings) > 0 {
		kb := make(KeybindingSectionConfig, len(base.Keybindings)+len(override.Keybindings))
		for action, keys := range base.Keybindings {
			kb[action] = keys
		}
		for action, keys := range override.Keybindings {
			kb[action] = keys
		}
		result.Keybindings = kb
	}

	return result
}
