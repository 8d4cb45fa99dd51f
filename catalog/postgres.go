package catalog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kakapo/kakapo/errors"
)

// PostgresSource lists tables and views visible through information_schema.
type PostgresSource struct {
	DSN     string
	Timeout time.Duration
}

// NewPostgresSource creates a PostgresSource with a 10 second connect timeout.
func NewPostgresSource(dsn string) *PostgresSource {
	return &PostgresSource{DSN: dsn, Timeout: 10 * time.Second}
}

// Name omits the DSN, which may carry credentials.
func (s *PostgresSource) Name() string { return SourcePostgres }

const postgresObjectsQuery = `
SELECT table_schema, table_name, table_type
FROM information_schema.tables
WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
ORDER BY table_schema, table_name`

// Load connects, lists and disconnects.
func (s *PostgresSource) Load(ctx context.Context) ([]Entity, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	conn, err := pgx.Connect(ctx, s.DSN)
	if err != nil {
		return nil, errors.CatalogSource(SourcePostgres, err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(ctx, postgresObjectsQuery)
	if err != nil {
		return nil, errors.CatalogSource(SourcePostgres, err)
	}
	defer rows.Close()

	var entities []Entity
	for rows.Next() {
		var schema, name, tableType string
		if err := rows.Scan(&schema, &name, &tableType); err != nil {
			return nil, errors.CatalogSource(SourcePostgres, err)
		}
		kind, ok := postgresKind(tableType)
		if !ok {
			continue
		}
		entities = append(entities, newEntity(kind, SourcePostgres, schema+"."+name, schema+"."+name))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.CatalogSource(SourcePostgres, err)
	}

	Sort(entities)
	return entities, nil
}

// postgresKind maps information_schema.tables.table_type.
func postgresKind(tableType string) (Kind, bool) {
	switch tableType {
	case "BASE TABLE":
		return KindTable, true
	case "VIEW":
		return KindView, true
	}
	return 0, false
}
