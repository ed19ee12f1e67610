package tui

import (
	"strings"

	"github.com/akyairhashvil/sleeplog/internal/config"
	"github.com/akyairhashvil/sleeplog/internal/models"
	"github.com/akyairhashvil/sleeplog/internal/util"
)

// HistoryModel tracks the cursor and scroll window over the entry list.
type HistoryModel struct {
	cursor int
	offset int
}

func (h HistoryModel) Cursor() int { return h.cursor }

// Move shifts the cursor by delta within n items.
func (h *HistoryModel) Move(delta, n int) {
	h.cursor += delta
	h.Clamp(n)
}

// Clamp keeps the cursor and window valid for n items.
func (h *HistoryModel) Clamp(n int) {
	if n == 0 {
		h.cursor, h.offset = 0, 0
		return
	}
	h.cursor = util.Clamp(h.cursor, 0, n-1)
	if h.cursor < h.offset {
		h.offset = h.cursor
	}
	if h.cursor >= h.offset+config.MaxVisibleEntries {
		h.offset = h.cursor - config.MaxVisibleEntries + 1
	}
	h.offset = util.Clamp(h.offset, 0, n-1)
}

// Selected returns the entry under the cursor.
func (h HistoryModel) Selected(entries []models.SleepEntry) (models.SleepEntry, bool) {
	if h.cursor < 0 || h.cursor >= len(entries) {
		return models.SleepEntry{}, false
	}
	return entries[h.cursor], true
}

// renderHistory lists entries in collection order. The cursor is only
// drawn when the pane has focus.
func renderHistory(entries []models.SleepEntry, h HistoryModel, focused bool, editingID string, width int, theme Theme) string {
	if len(entries) == 0 {
		return theme.Dim.Render(config.EmptyHistoryMessage)
	}

	end := h.offset + config.MaxVisibleEntries
	if end > len(entries) {
		end = len(entries)
	}

	var items []string
	if h.offset > 0 {
		items = append(items, theme.Dim.Render("  ↑ more"))
	}
	for i := h.offset; i < end; i++ {
		items = append(items, renderHistoryItem(entries[i], focused && i == h.cursor, entries[i].ID == editingID, width, theme))
	}
	if end < len(entries) {
		items = append(items, theme.Dim.Render("  ↓ more"))
	}
	return strings.Join(items, "\n")
}

func renderHistoryItem(e models.SleepEntry, selected, editing bool, width int, theme Theme) string {
	marker := "  "
	if selected {
		marker = theme.Selected.Render("▸ ")
	}
	label := e.Quality.Label()
	if editing {
		label += " " + theme.Highlight.Render("(editing)")
	}
	head := padBetween(marker+label, theme.Dim.Render(formatEntryDate(e.Date)), width)

	lines := []string{head, "  Slept " + theme.Title.Render(formatHours(e.Hours)) + " hrs"}
	if e.HasNote() {
		lines = append(lines, "  "+theme.Note.Render(truncateLabel("💭 "+strings.ReplaceAll(e.Note, "\n", " "), width-2)))
	}
	return strings.Join(lines, "\n")
}

func (m TrackerModel) renderHistoryPane(width int) string {
	entries := m.repo.Entries()
	body := m.theme.Title.Render("Sleep History") + "\n\n" +
		renderHistory(entries, m.history, m.focus == focusHistory, m.form.EditingID(), width-2, m.theme)
	return m.theme.box(width, m.focus == focusHistory).Render(body)
}
