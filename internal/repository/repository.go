// Package repository owns the in-memory sleep entry collection and keeps
// it mirrored to a Store after every mutation.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/akyairhashvil/sleeplog/internal/models"
	"go.uber.org/zap"
)

// ErrNotLoaded is returned by mutations attempted before Initialize.
var ErrNotLoaded = errors.New("repository: entries not loaded yet")

// Store persists the whole collection. Save fully replaces prior content.
//
//go:generate mockgen -source=repository.go -destination=mock_store_test.go -package=repository
type Store interface {
	Load(ctx context.Context) ([]models.SleepEntry, error)
	Save(ctx context.Context, entries []models.SleepEntry) error
}

type Repository struct {
	mu      sync.RWMutex
	store   Store
	log     *zap.Logger
	entries []models.SleepEntry
	loaded  bool
}

func New(store Store, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{store: store, log: log}
}

// Initialize loads the persisted collection once. If the persisted content
// cannot be read the repository starts empty and is still usable; the
// returned error only reports what was discarded. Later calls do nothing.
func (r *Repository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return nil
	}

	entries, err := r.store.Load(ctx)
	if err != nil {
		r.log.Warn("could not load sleep entries, starting empty", zap.Error(err))
		r.entries = []models.SleepEntry{}
		r.loaded = true
		return fmt.Errorf("repository: load: %w", err)
	}

	valid, rejected := models.SplitValid(entries)
	for _, e := range rejected {
		r.log.Warn("dropping invalid sleep entry", zap.String("id", e.ID), zap.Float64("hours", e.Hours), zap.String("quality", string(e.Quality)))
	}
	r.entries = valid
	r.loaded = true
	r.log.Info("sleep entries loaded", zap.Int("count", len(valid)))
	return nil
}

// Loaded reports whether Initialize has completed.
func (r *Repository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Entries returns a snapshot in history order, newest created first.
func (r *Repository) Entries() []models.SleepEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.SleepEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Repository) Get(id string) (models.SleepEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.entries[i], true
	}
	return models.SleepEntry{}, false
}

// Upsert replaces the entry with the same id in place, or prepends it if
// the id is new. Invalid entries are rejected without any change. When the
// store write fails the in-memory collection is left as it was.
func (r *Repository) Upsert(ctx context.Context, entry models.SleepEntry) error {
	entry.Note = models.NormalizeNote(entry.Note)
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return ErrNotLoaded
	}

	var next []models.SleepEntry
	if i := r.indexOf(entry.ID); i >= 0 {
		next = make([]models.SleepEntry, len(r.entries))
		copy(next, r.entries)
		next[i] = entry
	} else {
		next = make([]models.SleepEntry, 0, len(r.entries)+1)
		next = append(next, entry)
		next = append(next, r.entries...)
	}
	return r.commit(ctx, "upsert", entry.ID, next)
}

// Remove deletes the entry with id. A missing id is a no-op.
func (r *Repository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		return ErrNotLoaded
	}

	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	next := make([]models.SleepEntry, 0, len(r.entries)-1)
	next = append(next, r.entries[:i]...)
	next = append(next, r.entries[i+1:]...)
	return r.commit(ctx, "remove", id, next)
}

// commit mirrors next to the store and only then adopts it. Callers hold mu.
func (r *Repository) commit(ctx context.Context, op, id string, next []models.SleepEntry) error {
	if err := r.store.Save(ctx, next); err != nil {
		r.log.Error("could not save sleep entries", zap.String("op", op), zap.String("id", id), zap.Error(err))
		return fmt.Errorf("repository: %s %s: %w", op, id, err)
	}
	r.entries = next
	r.log.Debug("sleep entries saved", zap.String("op", op), zap.String("id", id), zap.Int("count", len(next)))
	return nil
}

func (r *Repository) indexOf(id string) int {
	for i, e := range r.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
