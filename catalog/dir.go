package catalog

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kakapo/kakapo/errors"
	"github.com/moby/patternmatcher"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DirSource lists entities from a directory tree:
//
//	<root>/tables/*.{yml,yaml,toml}
//	<root>/views/*.{yml,yaml,toml}
//	<root>/queries/*.sql
//	<root>/scripts/*
//
// Missing kind directories are skipped.
type DirSource struct {
	Root   string
	Ignore []string
}

// NewDirSource creates a DirSource.
func NewDirSource(root string, ignore []string) *DirSource {
	return &DirSource{Root: root, Ignore: ignore}
}

func (s *DirSource) Name() string { return SourceFiles + ":" + s.Root }

// definition is the metadata read from table and view files.
type definition struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
}

// Load walks the kind directories under Root.
func (s *DirSource) Load(ctx context.Context) ([]Entity, error) {
	info, err := os.Stat(s.Root)
	if err != nil {
		return nil, errors.CatalogSource(s.Root, err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeCatalogSource, "catalog root is not a directory").
			WithDetail("location", s.Root)
	}

	pm, err := patternmatcher.New(s.Ignore)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid ignore pattern")
	}

	var entities []Entity
	for _, kind := range AllKinds {
		dir := filepath.Join(s.Root, kind.Dir())
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			rel, err := filepath.Rel(s.Root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			ignored, err := pm.MatchesOrParentMatches(rel)
			if err != nil {
				return err
			}
			if ignored {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
				return nil
			}

			entity, ok, err := readEntry(kind, path, rel)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if fi, err := d.Info(); err == nil {
				entity.Modified = fi.ModTime()
			}
			entities = append(entities, entity)
			return nil
		})
		if err != nil {
			if errors.GetCode(err) != "" {
				return nil, err
			}
			return nil, errors.CatalogSource(dir, err)
		}
	}

	Sort(entities)
	return entities, nil
}

// readEntry builds the entity for one file. ok is false for files that do
// not define an entity of this kind.
func readEntry(kind Kind, path, rel string) (Entity, bool, error) {
	ext := strings.ToLower(filepath.Ext(path))
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch kind {
	case KindTable, KindView:
		if ext != ".yml" && ext != ".yaml" && ext != ".toml" {
			return Entity{}, false, nil
		}
		def, err := readDefinition(path, ext == ".toml")
		if err != nil {
			return Entity{}, false, errors.CatalogSource(rel, err)
		}
		name := def.Name
		if name == "" {
			name = base
		}
		e := newEntity(kind, SourceFiles, name, rel)
		e.Description = strings.TrimSpace(def.Description)
		return e, true, nil

	case KindQuery:
		if ext != ".sql" {
			return Entity{}, false, nil
		}
		desc, err := firstComment(path, "--")
		if err != nil {
			return Entity{}, false, errors.CatalogSource(rel, err)
		}
		e := newEntity(kind, SourceFiles, base, rel)
		e.Description = desc
		return e, true, nil

	case KindScript:
		desc, err := firstComment(path, "#", "//")
		if err != nil {
			return Entity{}, false, errors.CatalogSource(rel, err)
		}
		e := newEntity(kind, SourceFiles, base, rel)
		e.Description = desc
		return e, true, nil
	}
	return Entity{}, false, nil
}

func readDefinition(path string, isTOML bool) (definition, error) {
	var def definition
	data, err := os.ReadFile(path)
	if err != nil {
		return def, err
	}
	if isTOML {
		err = toml.Unmarshal(data, &def)
	} else {
		err = yaml.Unmarshal(data, &def)
	}
	return def, err
}

// firstComment returns the text of the first line starting with one of the
// prefixes. Shebang lines are skipped.
func firstComment(path string, prefixes ...string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#!") {
			continue
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(line, prefix) {
				if text := strings.TrimSpace(strings.TrimPrefix(line, prefix)); text != "" {
					return text, nil
				}
			}
		}
	}
	// Long binary lines are not worth failing over.
	if err := scanner.Err(); err != nil && err != bufio.ErrTooLong {
		return "", err
	}
	return "", nil
}
