package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kakapo/kakapo/errors"
	"github.com/kakapo/kakapo/util/pathutil"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are searched for, in order, in each directory.
var configNames = []string{
	"kakapo.yml",
	"kakapo.yaml",
	".kakapo.yml",
	".kakapo.yaml",
	"kakapo.toml",
}

// Load reads, validates and defaults a single configuration file.
func Load(path string) (*Config, error) {
	cfg, err := readLayer(path)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return finalize(cfg, filepath.Dir(path))
}

// LoadFromBytes parses configuration from a byte slice. isTOML selects the
// TOML decoder; YAML is used otherwise.
func LoadFromBytes(data []byte, isTOML bool) (*Config, error) {
	cfg, err := decode(data, isTOML)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse configuration")
	}
	return finalize(cfg, "")
}

// LoadDefault loads configuration starting from the current directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory.
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging:
//  1. Global config ($KAKAPO_HOME/config.yaml or ~/.kakapo/config.yaml) - base layer
//  2. Project config (kakapo.yml, searched upward from startDir) - overrides global
//
// At least one layer must exist; otherwise a CONFIG_NOT_FOUND error is returned.
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	var merged *Config
	baseDir := startDir

	if globalPath := GlobalConfigPath(); globalPath != "" {
		if info, err := os.Stat(globalPath); err == nil && !info.IsDir() {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			global, err := readLayer(globalPath)
			if err != nil {
				logger.WithError(err).Warn("Failed to read global configuration, continuing without it")
			} else {
				merged = global
				baseDir = filepath.Dir(globalPath)
			}
		}
	}

	projectPath, err := FindConfigFile(startDir)
	if err != nil && merged == nil {
		return nil, err
	}
	if projectPath != "" {
		logger.WithField("path", projectPath).Debug("Loading project configuration")
		project, err := readLayer(projectPath)
		if err != nil {
			return nil, err
		}
		project.Path = projectPath
		baseDir = filepath.Dir(projectPath)
		if merged == nil {
			merged = project
		} else {
			logger.Debug("Merging project configuration over global configuration")
			merged = mergeConfigs(merged, project)
		}
	}

	final, err := finalize(merged, baseDir)
	if err != nil {
		return nil, err
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(final); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(data))
		}
	}
	return final, nil
}

// FindConfigFile searches for a kakapo config file from startDir up to the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// GlobalConfigPath returns $KAKAPO_HOME/config.yaml, falling back to
// ~/.kakapo/config.yaml. It returns "" when no home directory is known.
func GlobalConfigPath() string {
	home := pathutil.KakapoHome()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "config.yaml")
}

// readLayer reads a single layer without defaults or validation.
func readLayer(path string) (*Config, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, errors.ConfigInvalid(path+" is a directory").WithDetail("path", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := decode(data, isTOMLPath(path))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file").
			WithDetail("path", path)
	}
	return cfg, nil
}

// decode expands environment variables and unmarshals YAML or TOML.
func decode(data []byte, isTOML bool) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var cfg Config
	if !isTOML {
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := toml.Unmarshal(expanded, &cfg); err != nil {
		return nil, err
	}
	// TOML has no inline maps; collect the non-core keys by hand.
	var raw map[string]interface{}
	if err := toml.Unmarshal(expanded, &raw); err != nil {
		return nil, err
	}
	for key, value := range raw {
		if coreKeys[key] {
			continue
		}
		if cfg.Extensions == nil {
			cfg.Extensions = make(map[string]interface{})
		}
		cfg.Extensions[key] = value
	}
	return &cfg, nil
}

// finalize applies defaults, resolves paths and validates.
func finalize(cfg *Config, baseDir string) (*Config, error) {
	cfg.SetDefaults()
	cfg.resolvePaths(baseDir)

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create validator")
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePaths makes catalog paths absolute relative to baseDir.
func (c *Config) resolvePaths(baseDir string) {
	if baseDir == "" {
		return
	}
	c.Catalog.Root = pathutil.Resolve(baseDir, c.Catalog.Root)
	if c.Catalog.Database != "" {
		c.Catalog.Database = pathutil.Resolve(baseDir, c.Catalog.Database)
	}
}

func isTOMLPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
