package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/sleeplog/internal/database"
	"github.com/akyairhashvil/sleeplog/internal/models"
	"github.com/akyairhashvil/sleeplog/internal/repository"
	"github.com/akyairhashvil/sleeplog/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var errDiskFull = errors.New("disk full")

// failingStore loads fine but can be told to reject writes.
type failingStore struct {
	entries   []models.SleepEntry
	loadErr   error
	failSaves bool
	saves     int
}

func (s *failingStore) Load(ctx context.Context) ([]models.SleepEntry, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]models.SleepEntry(nil), s.entries...), nil
}

func (s *failingStore) Save(ctx context.Context, entries []models.SleepEntry) error {
	if s.failSaves {
		return errDiskFull
	}
	s.saves++
	s.entries = append([]models.SleepEntry(nil), entries...)
	return nil
}

func setupEntryStore(t *testing.T) *database.EntryStore {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return database.NewEntryStore(db, "sleep_entries")
}

func setupRepository(t *testing.T, store repository.Store) *repository.Repository {
	t.Helper()
	repo := repository.New(store, zap.NewNop())
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return repo
}

// clockAt returns each of times in turn, repeating the last one.
func clockAt(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		now := times[i]
		if i < len(times)-1 {
			i++
		}
		return now
	}
}

func setupTracker(t *testing.T, repo EntryRepository, now func() time.Time) TrackerModel {
	t.Helper()
	if now == nil {
		now = testutil.FixedClock(time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC), 24*time.Hour)
	}
	return NewTrackerModel(context.Background(), repo, zap.NewNop(), Options{
		NewID: testutil.SequentialIDs("entry"),
		Now:   now,
	})
}

func press(t *testing.T, m TrackerModel, keys ...tea.KeyMsg) TrackerModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		updated, ok := next.(TrackerModel)
		if !ok {
			t.Fatalf("expected TrackerModel, got %T", next)
		}
		m = updated
	}
	return m
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

var (
	keySave     = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
)

// submit fills the create form and saves it.
func submit(t *testing.T, m TrackerModel, q models.Quality, hours, note string) TrackerModel {
	t.Helper()
	m.form.SetQuality(q)
	m.form.SetHours(hours)
	m.form.SetNote(note)
	return press(t, m, keySave)
}

func focusHistoryPane(t *testing.T, m TrackerModel) TrackerModel {
	t.Helper()
	for i := 0; i < int(focusCount) && m.focus != focusHistory; i++ {
		m = press(t, m, keyTab)
	}
	if m.focus != focusHistory {
		t.Fatalf("expected history focus, got %v", m.focus)
	}
	return m
}
