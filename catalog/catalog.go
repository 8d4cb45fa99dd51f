// Package catalog lists the tables, views, queries and scripts the dashboard
// shows. It never reads entity data.
package catalog

import (
	"context"
	"sync"

	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/errors"
	"github.com/kakapo/kakapo/logging"
	"github.com/kakapo/kakapo/pkg/profiling"
	"golang.org/x/sync/errgroup"
)

// Source produces catalog entities.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Entity, error)
}

// Catalog merges its sources and keeps the last successful snapshot.
type Catalog struct {
	sources []Source

	mu       sync.RWMutex
	entities []Entity
}

// New creates a catalog over sources.
func New(sources ...Source) *Catalog {
	return &Catalog{sources: sources}
}

// FromConfig builds the sources named by cfg: the directory root always,
// plus SQLite and Postgres when configured.
func FromConfig(cfg config.CatalogConfig) *Catalog {
	sources := []Source{NewDirSource(cfg.Root, cfg.Ignore)}
	if cfg.Database != "" {
		sources = append(sources, NewSQLiteSource(cfg.Database))
	}
	if cfg.PostgresDSN != "" {
		sources = append(sources, NewPostgresSource(cfg.PostgresDSN))
	}
	return New(sources...)
}

// Sources returns the configured sources.
func (c *Catalog) Sources() []Source {
	return c.sources
}

// Roots returns the directories of all DirSources.
func (c *Catalog) Roots() []string {
	var roots []string
	for _, s := range c.sources {
		if d, ok := s.(*DirSource); ok {
			roots = append(roots, d.Root)
		}
	}
	return roots
}

// Load queries every source concurrently and returns the merged, sorted
// entities. Any source failure fails the whole load with CATALOG_LOAD and
// leaves the previous snapshot in place.
func (c *Catalog) Load(ctx context.Context) ([]Entity, error) {
	logger := logging.NewLogger("catalog")
	defer profiling.Start("catalog.load").Stop()

	results := make([][]Entity, len(c.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range c.sources {
		g.Go(func() error {
			span := profiling.Start("catalog.source " + sourceKind(src))
			entities, err := src.Load(gctx)
			span.Stop()
			if err != nil {
				return errors.CatalogLoad(src.Name(), err)
			}
			results[i] = entities
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("Catalog load failed")
		return nil, err
	}

	var merged []Entity
	for _, r := range results {
		merged = append(merged, r...)
	}
	Sort(merged)

	c.mu.Lock()
	c.entities = merged
	c.mu.Unlock()

	logger.WithField("entities", len(merged)).Debug("Catalog loaded")
	return merged, nil
}

// Entities returns the last loaded snapshot.
func (c *Catalog) Entities() []Entity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entities
}

// Filter applies Filter to the last loaded snapshot.
func (c *Catalog) Filter(kinds []Kind) []Entity {
	return Filter(c.Entities(), kinds)
}

// sourceKind names a source without its location, which may hold credentials.
func sourceKind(src Source) string {
	switch src.(type) {
	case *DirSource:
		return SourceFiles
	case *SQLiteSource:
		return SourceSQLite
	case *PostgresSource:
		return SourcePostgres
	}
	return "custom"
}
