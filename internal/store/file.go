package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/akyairhashvil/sleeplog/internal/models"
)

// FileStore keeps the entry collection as a JSON array in a single file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns an empty collection when the file is missing or blank.
func (s *FileStore) Load(ctx context.Context) ([]models.SleepEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.SleepEntry{}, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	entries, err := models.DecodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", s.path, err)
	}
	return entries, nil
}

// Save atomically replaces the file contents with entries.
func (s *FileStore) Save(ctx context.Context, entries []models.SleepEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := models.EncodeEntries(entries)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := atomicWriteFile(s.path, data); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func atomicWriteFile(filePath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}
