// Package store selects and opens the persistence backend for sleep entries.
package store

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/sleeplog/internal/config"
	"github.com/akyairhashvil/sleeplog/internal/database"
	"github.com/akyairhashvil/sleeplog/internal/models"
)

// Store is the persistence contract every backend satisfies.
type Store interface {
	Load(ctx context.Context) ([]models.SleepEntry, error)
	Save(ctx context.Context, entries []models.SleepEntry) error
	Close() error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*database.EntryStore)(nil)
)

// Open returns the backend named by cfg.Backend, rooted in cfg.DataDir.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := database.Open(ctx, cfg.DBPath())
		if err != nil {
			return nil, fmt.Errorf("store: open sqlite: %w", err)
		}
		return database.NewEntryStore(db, config.StorageKey), nil
	case config.BackendJSON:
		return NewFileStore(cfg.JSONPath()), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}
