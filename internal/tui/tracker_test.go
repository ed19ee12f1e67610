package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/sleeplog/internal/config"
	"github.com/akyairhashvil/sleeplog/internal/models"
	"github.com/akyairhashvil/sleeplog/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTrackerSubmitPoorNightWithBlankNote(t *testing.T) {
	repo := setupRepository(t, setupEntryStore(t))
	m := setupTracker(t, repo, nil)

	m = submit(t, m, models.QualityPoor, "3", "  ")

	entries := repo.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Quality != models.QualityPoor || e.Hours != 3 || e.HasNote() {
		t.Fatalf("unexpected entry %+v", e)
	}
	if m.Message != "Entry saved" {
		t.Fatalf("expected saved status, got %q", m.Message)
	}

	history := m.renderHistoryPane(config.DefaultWidth)
	if !containsAll(history, "😵 Poor", "Slept 3 hrs") {
		t.Fatalf("unexpected history:\n%s", history)
	}
	if strings.Contains(history, "💭") {
		t.Fatalf("expected no note block:\n%s", history)
	}
	chart := m.renderChartPane(config.DefaultWidth)
	if got := strings.Count(chart, string(chartPoint)); got != 1 {
		t.Fatalf("expected one chart point, got %d:\n%s", got, chart)
	}
}

func TestTrackerChartAndHistoryOrder(t *testing.T) {
	repo := setupRepository(t, setupEntryStore(t))
	later := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := setupTracker(t, repo, clockAt(later, earlier))

	m = submit(t, m, models.QualityGreat, "9", "")
	m = submit(t, m, models.QualityOkay, "5", "")

	entries := repo.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].Date.Equal(earlier) {
		t.Fatalf("expected most recently created first in history, got %v", entries[0].Date)
	}
	points := ChartPoints(entries)
	if !points[0].Date.Equal(earlier) || !points[1].Date.Equal(later) {
		t.Fatalf("expected chart ascending by date, got %+v", points)
	}
}

func TestTrackerEditRejectsOutOfRange(t *testing.T) {
	seed := testutil.NewEntry().WithID("night").WithHours(7).WithNote("ok").Build()
	store := &failingStore{entries: []models.SleepEntry{seed}}
	repo := setupRepository(t, store)
	m := setupTracker(t, repo, nil)

	m = focusHistoryPane(t, m)
	m = press(t, m, runeKey("e"))
	if m.form.EditingID() != "night" {
		t.Fatalf("expected night selected, got %q", m.form.EditingID())
	}

	m.form.SetHours("30")
	m = press(t, m, keySave)

	if m.form.Err() != config.HoursRangeMessage {
		t.Fatalf("expected range error, got %q", m.form.Err())
	}
	if m.form.EditingID() != "night" {
		t.Fatalf("expected to remain in edit mode")
	}
	got, _ := repo.Get("night")
	if got != seed {
		t.Fatalf("entry changed: %+v", got)
	}
	if store.saves != 0 {
		t.Fatalf("expected no writes, got %d", store.saves)
	}
}

func TestTrackerCancelEditResetsForm(t *testing.T) {
	seed := testutil.NewEntry().WithID("night").WithQuality(models.QualityPoor).WithHours(4).WithNote("noise").Build()
	store := &failingStore{entries: []models.SleepEntry{seed}}
	repo := setupRepository(t, store)
	m := setupTracker(t, repo, nil)

	m = focusHistoryPane(t, m)
	m = press(t, m, keyEnter)
	if !m.form.Editing() {
		t.Fatalf("expected edit mode")
	}
	m = press(t, m, keyEsc)

	if m.form.Editing() {
		t.Fatalf("expected create mode after cancel")
	}
	if m.form.Quality() != models.QualityGreat || m.form.HoursValue() != "8" || m.form.NoteValue() != "" {
		t.Fatalf("expected defaults, got %q %q %q", m.form.Quality(), m.form.HoursValue(), m.form.NoteValue())
	}
	if store.saves != 0 || repo.Len() != 1 {
		t.Fatalf("expected no changes, saves=%d len=%d", store.saves, repo.Len())
	}
}

func TestTrackerEditKeepsDateAndID(t *testing.T) {
	repo := setupRepository(t, setupEntryStore(t))
	m := setupTracker(t, repo, nil)
	m = submit(t, m, models.QualityOkay, "6", "first")
	original := repo.Entries()[0]

	m = focusHistoryPane(t, m)
	m = press(t, m, runeKey("e"))
	m.form.SetQuality(models.QualityGreat)
	m.form.SetHours("8.5")
	m.form.SetNote("second")
	m = press(t, m, keySave)

	if m.Message != "Entry updated" {
		t.Fatalf("expected updated status, got %q", m.Message)
	}
	if m.form.Editing() {
		t.Fatalf("expected selection cleared after save")
	}
	entries := repo.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	updated := entries[0]
	if updated.ID != original.ID || !updated.Date.Equal(original.Date) {
		t.Fatalf("identity changed: before %+v after %+v", original, updated)
	}
	if updated.Hours != 8.5 || updated.Note != "second" || updated.Quality != models.QualityGreat {
		t.Fatalf("unexpected entry %+v", updated)
	}
}

func TestTrackerDeleteRequiresConfirmation(t *testing.T) {
	seed := []models.SleepEntry{
		testutil.NewEntry().WithID("a").Build(),
		testutil.NewEntry().WithID("b").Build(),
	}
	store := &failingStore{entries: seed}
	repo := setupRepository(t, store)
	m := setupTracker(t, repo, nil)
	m = focusHistoryPane(t, m)

	m = press(t, m, runeKey("d"))
	if !m.modal.Is(ModalConfirmDelete) {
		t.Fatalf("expected confirm modal")
	}
	if !strings.Contains(m.View(), config.ConfirmDeletePrompt) {
		t.Fatalf("expected prompt in view")
	}
	m = press(t, m, runeKey("n"))
	if m.modal.IsOpen() || repo.Len() != 2 || store.saves != 0 {
		t.Fatalf("expected cancel, len=%d saves=%d", repo.Len(), store.saves)
	}

	m = press(t, m, runeKey("d"), runeKey("y"))
	if repo.Len() != 1 || store.saves != 1 {
		t.Fatalf("expected one removal, len=%d saves=%d", repo.Len(), store.saves)
	}
	if _, ok := repo.Get("a"); ok {
		t.Fatalf("expected a to be removed")
	}
	if m.Message != "Entry deleted" {
		t.Fatalf("unexpected status %q", m.Message)
	}
}

func TestTrackerDeleteClearsSelection(t *testing.T) {
	store := &failingStore{entries: []models.SleepEntry{testutil.NewEntry().WithID("only").Build()}}
	repo := setupRepository(t, store)
	m := setupTracker(t, repo, nil)
	m = focusHistoryPane(t, m)

	m = press(t, m, runeKey("e"))
	m = focusHistoryPane(t, m)
	m = press(t, m, runeKey("d"), runeKey("y"))

	if m.form.Editing() {
		t.Fatalf("expected selection cleared after deleting edited entry")
	}
	if !strings.Contains(m.View(), config.EmptyHistoryMessage) {
		t.Fatalf("expected empty history placeholder")
	}
}

func TestTrackerSaveFailureKeepsState(t *testing.T) {
	store := &failingStore{}
	repo := setupRepository(t, store)
	m := setupTracker(t, repo, nil)
	store.failSaves = true

	m = submit(t, m, models.QualityGreat, "7", "dream")

	if repo.Len() != 0 {
		t.Fatalf("expected no entries after failed save, got %d", repo.Len())
	}
	if !m.StatusIsError() || !strings.Contains(m.Message, errDiskFull.Error()) {
		t.Fatalf("expected error status, got %q", m.Message)
	}
	if m.form.HoursValue() != "7" || m.form.NoteValue() != "dream" {
		t.Fatalf("form values should survive a failed save")
	}
}

func TestTrackerQualityKeys(t *testing.T) {
	repo := setupRepository(t, &failingStore{})
	m := setupTracker(t, repo, nil)
	if m.focus != focusQuality {
		t.Fatalf("expected initial quality focus")
	}
	m = press(t, m, keyRight)
	if m.form.Quality() != models.QualityOkay {
		t.Fatalf("expected okay, got %q", m.form.Quality())
	}
	m = press(t, m, keyLeft, keyLeft)
	if m.form.Quality() != models.QualityPoor {
		t.Fatalf("expected wrap to poor, got %q", m.form.Quality())
	}
	m = press(t, m, runeKey("1"))
	if m.form.Quality() != models.QualityGreat {
		t.Fatalf("expected great, got %q", m.form.Quality())
	}
}

func TestTrackerHistoryNavigationAndQuit(t *testing.T) {
	seed := []models.SleepEntry{
		testutil.NewEntry().WithID("a").Build(),
		testutil.NewEntry().WithID("b").Build(),
	}
	repo := setupRepository(t, &failingStore{entries: seed})
	m := setupTracker(t, repo, nil)
	m = press(t, m, keyShiftTab)
	if m.focus != focusHistory {
		t.Fatalf("expected shift+tab to wrap to history, got %v", m.focus)
	}
	m = press(t, m, keyDown, runeKey("j"))
	if m.history.Cursor() != 1 {
		t.Fatalf("expected cursor clamped at 1, got %d", m.history.Cursor())
	}
	m = press(t, m, keyUp)
	if m.history.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", m.history.Cursor())
	}

	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestTrackerViewReflectsRepository(t *testing.T) {
	repo := setupRepository(t, &failingStore{})
	m := setupTracker(t, repo, nil)
	view := m.View()
	if !containsAll(view, "New Sleep Entry", "Sleep Trend", "Sleep History", config.EmptyHistoryMessage) {
		t.Fatalf("unexpected empty view:\n%s", view)
	}

	if err := repo.Upsert(context.Background(), testutil.NewEntry().WithID("x").WithNote("lucid").Build()); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	view = m.View()
	if strings.Contains(view, config.EmptyHistoryMessage) || !strings.Contains(view, "💭 lucid") {
		t.Fatalf("view should follow repository state:\n%s", view)
	}
}
