// Package sqlite provides a SQLite-backed dataset source and writer.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
	"github.com/ewilliams-labs/artistscope/internal/core/ports"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously
)

// Adapter implements the dataset ports for SQLite
type Adapter struct {
	db   *sql.DB
	path string
}

var (
	_ ports.DatasetSource = (*Adapter)(nil)
	_ ports.TrackWriter   = (*Adapter)(nil)
)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	// every :memory: connection is a separate database
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping db: %w", err)
	}

	adapter := &Adapter{db: db, path: storagePath}

	if err := adapter.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Name identifies the source in logs.
func (a *Adapter) Name() string {
	return "sqlite:" + a.path
}

// Load returns every stored track in dataset order.
func (a *Adapter) Load(ctx context.Context) ([]domain.TrackRow, error) {
	query := "SELECT " + strings.Join(domain.Columns, ", ") + " FROM tracks ORDER BY position ASC"
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewLoadError(a.Name(), fmt.Errorf("sqlite: query tracks: %w", err))
	}
	defer rows.Close()

	var out []domain.TrackRow
	values := make([]sql.NullString, len(domain.Columns))
	dest := make([]any, len(domain.Columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.NewLoadError(a.Name(), fmt.Errorf("sqlite: scan track: %w", err))
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
		return nil, domain.NewLoadError(a.Name(), fmt.Errorf("sqlite: iterate tracks: %w", err))
	}

	return out, nil
}

// SaveTracks replaces the stored dataset with rows in a single transaction.
func (a *Adapter) SaveTracks(ctx context.Context, rows []domain.TrackRow) error {
	// 1. Start Transaction
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin transaction: %w", err)
	}
	defer tx.Rollback() // Safety net: auto-rollback if we error/panic before commit

	// 2. Clear the previous dataset
	if _, err := tx.ExecContext(ctx, "DELETE FROM tracks"); err != nil {
		return fmt.Errorf("sqlite: clear tracks: %w", err)
	}

	// 3. Insert rows, prepared once
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(domain.Columns)+1), ", ")
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO tracks (position, "+strings.Join(domain.Columns, ", ")+") VALUES ("+placeholders+")")
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		args := make([]any, 0, len(domain.Columns)+1)
		args = append(args, i)
		for _, v := range r.Values() {
			args = append(args, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("sqlite: insert track %d: %w", i, err)
		}
	}

	// 4. Commit Transaction
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: transaction commit failed: %w", err)
	}

	return nil
}

func (a *Adapter) migrate() error {
	columns := make([]string, len(domain.Columns))
	for i, c := range domain.Columns {
		columns[i] = c + " TEXT"
	}
	query := `
	CREATE TABLE IF NOT EXISTS tracks (
		position INTEGER PRIMARY KEY,
		` + strings.Join(columns, ",\n\t\t") + `
	);

	CREATE INDEX IF NOT EXISTS idx_tracks_artist ON tracks (artist_name COLLATE NOCASE);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	// Older databases were created before track_id was stored.
	if _, err := a.db.Exec("ALTER TABLE tracks ADD COLUMN track_id TEXT"); err != nil {
		if !isDuplicateColumnError(err) {
			return err
		}
	}

	return nil
}

func isDuplicateColumnError(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "duplicate column") || strings.Contains(err.Error(), "already exists"))
}
