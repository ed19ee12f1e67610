package database

import (
	"context"

	"github.com/akyairhashvil/sleeplog/internal/models"
)

// EntryStore persists the sleep entry collection as a JSON array under a
// single kv_store key.
type EntryStore struct {
	db  *Database
	key string
}

func NewEntryStore(db *Database, key string) *EntryStore {
	return &EntryStore{db: db, key: key}
}

// Load returns the persisted collection, or an empty one if the key has
// never been written. Undecodable content wraps models.ErrMalformedEntries.
func (s *EntryStore) Load(ctx context.Context) ([]models.SleepEntry, error) {
	raw, ok, err := s.db.GetValue(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.SleepEntry{}, nil
	}
	entries, err := models.DecodeEntries([]byte(raw))
	return entries, wrapKVErr("decode", s.key, err)
}

// Save replaces the persisted collection with entries.
func (s *EntryStore) Save(ctx context.Context, entries []models.SleepEntry) error {
	data, err := models.EncodeEntries(entries)
	if err != nil {
		return wrapKVErr("encode", s.key, err)
	}
	return s.db.SetValue(ctx, s.key, string(data))
}

func (s *EntryStore) Close() error { return s.db.Close() }
