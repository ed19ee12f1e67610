package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite handle that backs the key-value store.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the sqlite file at path and ensures the schema exists.
// A file that is not a sqlite database yields ErrDatabaseCorrupted.
func Open(ctx context.Context, path string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps every read ordered after the last write.
	db.SetMaxOpenConns(1)

	d := &Database{DB: db, dbFile: path}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, classifyOpenErr(err)
	}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, classifyOpenErr(err)
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file the database was opened from.
func (d *Database) Path() string { return d.dbFile }

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func classifyOpenErr(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrNotADB {
		return fmt.Errorf("%w: %v", ErrDatabaseCorrupted, err)
	}
	return err
}
