package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Write serializes cfg to path as YAML, or TOML when path ends in .toml.
// Parent directories are created as needed.
func Write(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOMLPath(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	// Refuse to write a file the loader would reject.
	if _, err := LoadFromBytes(data, isTOMLPath(path)); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
