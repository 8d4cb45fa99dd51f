package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	name     string
	entities []Entity
	err      error
	calls    atomic.Int32
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Load(ctx context.Context) ([]Entity, error) {
	s.calls.Add(1)
	return s.entities, s.err
}

func TestCatalogLoadMergesSources(t *testing.T) {
	a := &staticSource{name: "a", entities: []Entity{
		newEntity(KindScript, "a", "zeta", "z"),
		newEntity(KindTable, "a", "beta", "b"),
	}}
	b := &staticSource{name: "b", entities: []Entity{
		newEntity(KindTable, "b", "alpha", "a"),
		newEntity(KindView, "b", "gamma", "g"),
	}}

	c := New(a, b)
	entities, err := c.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta", "gamma", "zeta"}, names(entities))
	assert.Equal(t, entities, c.Entities())
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, names(c.Filter([]Kind{KindView, KindTable})))
	assert.EqualValues(t, 1, a.calls.Load())
	assert.EqualValues(t, 1, b.calls.Load())
}

func TestCatalogLoadFailureKeepsSnapshot(t *testing.T) {
	ok := &staticSource{name: "ok", entities: []Entity{newEntity(KindTable, "ok", "users", "u")}}
	c := New(ok)
	_, err := c.Load(context.Background())
	require.NoError(t, err)

	bad := &staticSource{name: "broken", err: fmt.Errorf("boom")}
	c.sources = append(c.sources, bad)

	_, err = c.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeCatalogLoad))
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, []string{"users"}, names(c.Entities()))
}

func TestFromConfig(t *testing.T) {
	c := FromConfig(config.CatalogConfig{Root: "/srv/catalog"})
	require.Len(t, c.Sources(), 1)
	assert.Equal(t, []string{"/srv/catalog"}, c.Roots())

	c = FromConfig(config.CatalogConfig{
		Root:        "/srv/catalog",
		Database:    "/srv/app.db",
		PostgresDSN: "postgres://localhost/app",
	})
	require.Len(t, c.Sources(), 3)
	assert.IsType(t, &SQLiteSource{}, c.Sources()[1])
	assert.IsType(t, &PostgresSource{}, c.Sources()[2])
}

func TestCatalogLoadDirAndSQLite(t *testing.T) {
	root := fixtureRoot(t)
	db := createSQLite(t)

	c := New(NewDirSource(root, nil), NewSQLiteSource(db))
	entities, err := c.Load(context.Background())
	require.NoError(t, err)

	tables := Filter(entities, []Kind{KindTable})
	assert.Equal(t, []string{"orders", "orders", "users", "users"}, names(tables))
	assert.Equal(t, filepath.Base(db)+"/orders", tables[0].Location)
}
