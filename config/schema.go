package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for kakapo configuration files.
// Extensions are not part of the schema; they are validated by their owners.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	type BaseConfig struct {
		Version string        `yaml:"version" jsonschema:"required,description=Configuration version (e.g. '1.0')"`
		Name    string        `yaml:"name,omitempty" jsonschema:"description=Display name shown in the dashboard header"`
		Catalog CatalogConfig `yaml:"catalog,omitempty" jsonschema:"description=Entity catalog sources"`
		TUI     TUIConfig     `yaml:"tui,omitempty" jsonschema:"description=Dashboard appearance and keybindings"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Kakapo Configuration"
	schema.Description = "Schema for kakapo.yml."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
