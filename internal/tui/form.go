package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/akyairhashvil/sleeplog/internal/config"
	"github.com/akyairhashvil/sleeplog/internal/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldQuality formField = iota
	fieldHours
	fieldNote
	fieldNone
)

// FormModel captures one entry. With no entry bound it creates; with an
// entry bound it edits that entry, keeping its id and date.
type FormModel struct {
	editing *models.SleepEntry
	quality models.Quality
	hours   textinput.Model
	note    textarea.Model
	err     string
	newID   func() string
	now     func() time.Time
}

func NewFormModel(newID func() string, now func() time.Time) FormModel {
	hours := textinput.New()
	hours.Prompt = ""
	hours.Placeholder = "8"
	hours.CharLimit = config.HoursCharLimit
	hours.Width = 8

	note := textarea.New()
	note.Placeholder = "What did you dream about?"
	note.ShowLineNumbers = false
	note.CharLimit = config.MaxNoteLength
	note.SetHeight(config.NoteHeight)
	note.SetWidth(config.DefaultWidth - 8)

	f := FormModel{hours: hours, note: note, newID: newID, now: now}
	f.Bind(nil)
	return f
}

// Bind switches to edit mode for entry, or back to create mode with the
// default values when entry is nil. Any pending error is cleared.
func (f *FormModel) Bind(entry *models.SleepEntry) {
	f.err = ""
	if entry == nil {
		f.editing = nil
		f.quality = models.Quality(config.DefaultQuality)
		f.hours.SetValue(formatHours(config.DefaultHours))
		f.note.Reset()
		return
	}
	snapshot := *entry
	f.editing = &snapshot
	f.quality = entry.Quality
	f.hours.SetValue(formatHours(entry.Hours))
	f.note.SetValue(entry.Note)
}

func (f FormModel) Editing() bool { return f.editing != nil }

// EditingID is the id of the bound entry, or "" in create mode.
func (f FormModel) EditingID() string {
	if f.editing == nil {
		return ""
	}
	return f.editing.ID
}

func (f FormModel) Quality() models.Quality { return f.quality }
func (f FormModel) HoursValue() string      { return f.hours.Value() }
func (f FormModel) NoteValue() string       { return f.note.Value() }
func (f FormModel) Err() string             { return f.err }

func (f *FormModel) SetQuality(q models.Quality) {
	if q.Valid() {
		f.quality = q
	}
}

func (f *FormModel) SetHours(raw string) { f.hours.SetValue(raw) }
func (f *FormModel) SetNote(note string) { f.note.SetValue(note) }

func (f *FormModel) SetWidth(width int) {
	f.note.SetWidth(width)
}

// Submit validates the current values and returns the candidate entry.
// On failure the form keeps its values and mode and records an inline error.
func (f *FormModel) Submit() (models.SleepEntry, bool) {
	hours, err := parseHours(f.hours.Value())
	if err != nil {
		f.err = config.HoursNumberMessage
		return models.SleepEntry{}, false
	}

	candidate := models.SleepEntry{
		Quality: f.quality,
		Hours:   hours,
		Note:    models.NormalizeNote(f.note.Value()),
	}
	if f.editing != nil {
		candidate.ID = f.editing.ID
		candidate.Date = f.editing.Date
	} else {
		candidate.ID = f.newID()
		candidate.Date = f.now().UTC()
	}

	if err := candidate.Validate(); err != nil {
		f.err = validationMessage(err)
		return models.SleepEntry{}, false
	}
	f.err = ""
	return candidate, true
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrHoursOutOfRange):
		return config.HoursRangeMessage
	case errors.Is(err, models.ErrInvalidQuality):
		return "Pick a sleep quality."
	default:
		return err.Error()
	}
}

// Focus moves keyboard input to field and blurs the others.
func (f *FormModel) Focus(field formField) tea.Cmd {
	f.hours.Blur()
	f.note.Blur()
	switch field {
	case fieldHours:
		return f.hours.Focus()
	case fieldNote:
		return f.note.Focus()
	}
	return nil
}

// Update forwards msg to the input backing field.
func (f FormModel) Update(msg tea.Msg, field formField) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch field {
	case fieldHours:
		f.hours, cmd = f.hours.Update(msg)
	case fieldNote:
		f.note, cmd = f.note.Update(msg)
	}
	return f, cmd
}

func (f FormModel) View(theme Theme, field formField, width int) string {
	title := "New Sleep Entry"
	action := "[ctrl+s] Save"
	if f.editing != nil {
		title = "Edit Sleep Entry"
		action = "[ctrl+s] Update  [esc] Cancel"
	}

	label := func(text string, focused bool) string {
		if focused {
			return theme.Focused.Render("› " + text)
		}
		return theme.Label.Render("  " + text)
	}

	var options []string
	for _, q := range models.Qualities {
		face := " " + q.Emoji() + " "
		if q == f.quality {
			face = theme.Selected.Render("[" + q.Emoji() + "]")
		}
		options = append(options, face)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(title) + "\n\n")
	b.WriteString(label("Sleep Quality?", field == fieldQuality) + "  " + strings.Join(options, " "))
	b.WriteString("  " + theme.Dim.Render(titleWord(f.quality)) + "\n")
	b.WriteString(label("Hours Slept", field == fieldHours) + "  " + f.hours.View() + "\n")
	if f.err != "" {
		b.WriteString("  " + theme.Error.Render(f.err) + "\n")
	}
	b.WriteString(label("Dream Notes (optional)", field == fieldNote) + "\n")
	b.WriteString(f.note.View() + "\n")
	b.WriteString(theme.Dim.Render(action))

	return theme.box(width, field != fieldNone).Render(b.String())
}

func titleWord(q models.Quality) string {
	label := q.Label()
	if i := strings.Index(label, " "); i >= 0 {
		return label[i+1:]
	}
	return label
}
