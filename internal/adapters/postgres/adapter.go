// Package postgres provides a Postgres-backed dataset source and writer that
// mirrors the SQLite adapter's table layout.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
	"github.com/ewilliams-labs/artistscope/internal/core/ports"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/artistscope?sslmode=disable"
)

// Adapter implements the dataset ports for Postgres.
type Adapter struct {
	db *sql.DB
}

var (
	_ ports.DatasetSource = (*Adapter)(nil)
	_ ports.TrackWriter   = (*Adapter)(nil)
)

// NewAdapter opens dsn (falls back to defaultDSN) and ensures the tracks table exists.
func NewAdapter(ctx context.Context, dsn string) (*Adapter, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open(defaultDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	a := &Adapter{db: db}
	if err := a.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

// Close releases the connection pool.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Name identifies the source in logs without leaking credentials.
func (a *Adapter) Name() string {
	return "postgres:tracks"
}

// Load returns every stored track in dataset order.
func (a *Adapter) Load(ctx context.Context) ([]domain.TrackRow, error) {
	query := "SELECT " + strings.Join(domain.Columns, ", ") + " FROM tracks ORDER BY position ASC"
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewLoadError(a.Name(), fmt.Errorf("postgres: select tracks: %w", err))
	}
	defer func() { _ = rows.Close() }()

	var out []domain.TrackRow
	values := make([]sql.NullString, len(domain.Columns))
	dest := make([]any, len(domain.Columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.NewLoadError(a.Name(), fmt.Errorf("postgres: scan track: %w", err))
		}
		var row domain.TrackRow
		for i, c := range domain.Columns {
			if values[i].Valid {
				row.SetField(c, values[i].String)
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewLoadError(a.Name(), fmt.Errorf("postgres: iterate tracks: %w", err))
	}
	return out, nil
}

// SaveTracks replaces the stored dataset with rows in a single transaction.
func (a *Adapter) SaveTracks(ctx context.Context, rows []domain.TrackRow) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "TRUNCATE tracks"); err != nil {
		return fmt.Errorf("postgres: truncate tracks: %w", err)
	}

	placeholders := make([]string, len(domain.Columns)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO tracks (position, "+strings.Join(domain.Columns, ", ")+") VALUES ("+strings.Join(placeholders, ", ")+")")
	if err != nil {
		return fmt.Errorf("postgres: prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range rows {
		args := make([]any, 0, len(domain.Columns)+1)
		args = append(args, i)
		for _, v := range r.Values() {
			args = append(args, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("postgres: insert track %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func (a *Adapter) migrate(ctx context.Context) error {
	columns := make([]string, len(domain.Columns))
	for i, c := range domain.Columns {
		columns[i] = c + " TEXT"
	}
	ddl := `CREATE TABLE IF NOT EXISTS tracks (
		position INTEGER PRIMARY KEY,
		` + strings.Join(columns, ",\n\t\t") + `
	)`
	if _, err := a.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("postgres: ensure tracks table: %w", err)
	}
	if _, err := a.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_tracks_artist ON tracks (lower(artist_name))`); err != nil {
		return fmt.Errorf("postgres: ensure artist index: %w", err)
	}
	return nil
}
