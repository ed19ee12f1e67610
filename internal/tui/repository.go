package tui

import (
	"context"

	"github.com/akyairhashvil/sleeplog/internal/models"
	"github.com/akyairhashvil/sleeplog/internal/repository"
)

// EntryRepository defines the entry operations the TUI requires.
type EntryRepository interface {
	Initialize(ctx context.Context) error
	Loaded() bool
	Entries() []models.SleepEntry
	Get(id string) (models.SleepEntry, bool)
	Len() int
	Upsert(ctx context.Context, entry models.SleepEntry) error
	Remove(ctx context.Context, id string) error
}

var _ EntryRepository = (*repository.Repository)(nil)
