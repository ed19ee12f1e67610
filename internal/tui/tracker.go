package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/sleeplog/internal/config"
	"github.com/akyairhashvil/sleeplog/internal/models"
	"github.com/akyairhashvil/sleeplog/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type focusArea int

const (
	focusQuality focusArea = iota
	focusHours
	focusNote
	focusHistory
	focusCount
)

func (f focusArea) field() formField {
	switch f {
	case focusQuality:
		return fieldQuality
	case focusHours:
		return fieldHours
	case focusNote:
		return fieldNote
	}
	return fieldNone
}

// Options customise a TrackerModel. Zero values fall back to the defaults.
type Options struct {
	Theme Theme
	NewID func() string
	Now   func() time.Time
}

// TrackerModel wires the form, the trend chart and the history list to the
// entry repository. Everything drawn is derived from the repository
// snapshot at render time.
type TrackerModel struct {
	ctx     context.Context
	repo    EntryRepository
	log     *zap.Logger
	form    FormModel
	history HistoryModel
	focus   focusArea
	modal   *ModalManager
	keys    *HandlerRegistry
	theme   Theme

	width  int
	height int

	Message   string
	statusErr bool
}

func NewTrackerModel(ctx context.Context, repo EntryRepository, log *zap.Logger, opts Options) TrackerModel {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeByName("default")
	}
	m := TrackerModel{
		ctx:   ctx,
		repo:  repo,
		log:   log,
		form:  NewFormModel(opts.NewID, opts.Now),
		modal: newModalManager(),
		theme: opts.Theme,
		width: config.DefaultWidth,
	}
	m.keys = newTrackerKeys()
	return m
}

func (m TrackerModel) Init() tea.Cmd {
	return m.form.Focus(m.focus.field())
}

// Editing returns the entry currently selected for edit.
func (m TrackerModel) Editing() (models.SleepEntry, bool) {
	id := m.form.EditingID()
	if id == "" {
		return models.SleepEntry{}, false
	}
	return m.repo.Get(id)
}

func (m TrackerModel) Form() FormModel        { return m.form }
func (m TrackerModel) Modal() *ModalManager   { return m.modal }
func (m TrackerModel) Keys() *HandlerRegistry { return m.keys }
func (m TrackerModel) StatusIsError() bool    { return m.statusErr }

func (m *TrackerModel) setStatus(msg string) {
	m.Message = msg
	m.statusErr = false
}

func (m *TrackerModel) setError(what string, err error) {
	util.LogError(m.log, what, err)
	m.Message = fmt.Sprintf("%s: %v", what, err)
	m.statusErr = true
}

func (m TrackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetWidth(m.paneWidth() - 6)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg, m.focus.field())
	return m, cmd
}

func (m TrackerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.modal.Is(ModalConfirmDelete) {
		if key == "y" || key == "Y" {
			next, cmd := m.confirmDelete()
			return next, cmd
		}
		next, cmd := m.declineDelete()
		return next, cmd
	}

	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg, m.focus.field())
	return m, cmd
}

func (m TrackerModel) setFocus(f focusArea) (TrackerModel, tea.Cmd) {
	m.focus = f
	if f == focusHistory {
		m.history.Clamp(m.repo.Len())
	}
	return m, m.form.Focus(f.field())
}

// saveForm submits the form and writes the candidate through the
// repository. Validation failures stay inline on the form.
func (m TrackerModel) saveForm() (TrackerModel, tea.Cmd) {
	entry, ok := m.form.Submit()
	if !ok {
		return m, nil
	}
	updating := m.form.Editing()
	if err := m.repo.Upsert(m.ctx, entry); err != nil {
		m.setError("Could not save entry", err)
		return m, nil
	}
	m.form.Bind(nil)
	m.history.Clamp(m.repo.Len())
	if updating {
		m.setStatus("Entry updated")
	} else {
		m.setStatus("Entry saved")
	}
	return m, nil
}

func (m TrackerModel) cancelEdit() (TrackerModel, tea.Cmd, bool) {
	if !m.form.Editing() {
		return m, nil, false
	}
	m.form.Bind(nil)
	m.setStatus("Edit cancelled")
	return m, nil, true
}

// selectForEdit binds the entry under the history cursor to the form.
func (m TrackerModel) selectForEdit() (TrackerModel, tea.Cmd) {
	entry, ok := m.history.Selected(m.repo.Entries())
	if !ok {
		return m, nil
	}
	m.form.Bind(&entry)
	m.setStatus("Editing entry from " + formatEntryDate(entry.Date))
	return m.setFocus(focusHours)
}

func (m TrackerModel) requestDelete() (TrackerModel, tea.Cmd) {
	entry, ok := m.history.Selected(m.repo.Entries())
	if !ok {
		return m, nil
	}
	m.modal.Open(&ConfirmDeleteState{EntryID: entry.ID})
	return m, nil
}

func (m TrackerModel) confirmDelete() (TrackerModel, tea.Cmd) {
	state, ok := m.modal.ConfirmDeleteState()
	m.modal.Close()
	if !ok {
		return m, nil
	}
	if err := m.repo.Remove(m.ctx, state.EntryID); err != nil {
		m.setError("Could not delete entry", err)
		return m, nil
	}
	if m.form.EditingID() == state.EntryID {
		m.form.Bind(nil)
	}
	m.history.Clamp(m.repo.Len())
	m.setStatus("Entry deleted")
	return m, nil
}

func (m TrackerModel) declineDelete() (TrackerModel, tea.Cmd) {
	m.modal.Close()
	m.setStatus("")
	return m, nil
}

func (m TrackerModel) paneWidth() int {
	return util.Clamp(m.width-2, config.MinPaneWidth, config.DefaultWidth)
}

func (m TrackerModel) View() string {
	width := m.paneWidth()

	header := padBetween(
		m.theme.Header.Render("🌙 Sleep Tracker"),
		m.theme.Dim.Render(fmt.Sprintf("%d entries", m.repo.Len())),
		width,
	)

	sections := []string{
		header,
		m.form.View(m.theme, m.focus.field(), width),
		m.renderChartPane(width),
		m.renderHistoryPane(width),
	}
	if m.modal.Is(ModalConfirmDelete) {
		sections = append(sections, m.renderConfirmDelete(width))
	}
	if m.Message != "" {
		style := m.theme.Status
		if m.statusErr {
			style = m.theme.Error
		}
		sections = append(sections, style.Render(m.Message))
	}
	sections = append(sections, m.theme.Dim.Render(strings.ReplaceAll(m.keys.HelpFor(m.focus), "|", "  ")))

	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m TrackerModel) renderConfirmDelete(width int) string {
	body := m.theme.Error.Render("Delete Entry") + "\n\n" + config.ConfirmDeletePrompt
	if state, ok := m.modal.ConfirmDeleteState(); ok {
		if e, found := m.repo.Get(state.EntryID); found {
			body += "\n" + m.theme.Dim.Render(e.Quality.Label()+"  "+formatEntryDate(e.Date)+"  "+formatHours(e.Hours)+" hrs")
		}
	}
	return m.theme.box(width, true).Render(body)
}
