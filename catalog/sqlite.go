package catalog

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"

	"github.com/kakapo/kakapo/errors"

	_ "modernc.org/sqlite"
)

// SQLiteSource lists the user tables and views of a SQLite database file.
type SQLiteSource struct {
	Path string
}

// NewSQLiteSource creates a SQLiteSource.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{Path: path}
}

func (s *SQLiteSource) Name() string { return SourceSQLite + ":" + s.Path }

const sqliteObjectsQuery = `
SELECT type, name FROM sqlite_master
WHERE (type = 'table' AND name NOT LIKE 'sqlite_%') OR type = 'view'
ORDER BY name`

// Load opens the database read-only and lists sqlite_master.
func (s *SQLiteSource) Load(ctx context.Context) ([]Entity, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		// sql.Open would otherwise create an empty database.
		return nil, errors.CatalogSource(s.Path, err)
	}

	dsn := "file:" + (&url.URL{Path: s.Path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.CatalogSource(s.Path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, sqliteObjectsQuery)
	if err != nil {
		return nil, errors.CatalogSource(s.Path, err)
	}
	defer rows.Close()

	dbName := filepath.Base(s.Path)
	var entities []Entity
	for rows.Next() {
		var typ, name string
		if err := rows.Scan(&typ, &name); err != nil {
			return nil, errors.CatalogSource(s.Path, err)
		}
		kind := KindTable
		if typ == "view" {
			kind = KindView
		}
		e := newEntity(kind, SourceSQLite, name, dbName+"/"+name)
		e.Modified = info.ModTime()
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.CatalogSource(s.Path, err)
	}

	Sort(entities)
	return entities, nil
}
