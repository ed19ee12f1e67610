package tui

import (
	"github.com/akyairhashvil/sleeplog/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	formFocus    = []focusArea{focusQuality, focusHours, focusNote}
	historyFocus = []focusArea{focusHistory}
)

func newTrackerKeys() *HandlerRegistry {
	r := NewHandlerRegistry()

	r.Register(KeyBinding{Key: "tab", Description: "next", Handler: func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		next, cmd := m.setFocus((m.focus + 1) % focusCount)
		return next, cmd, true
	}})
	r.Register(KeyBinding{Key: "shift+tab", Handler: func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		next, cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return next, cmd, true
	}})
	r.Register(KeyBinding{Key: "ctrl+s", Description: "save", Handler: submitForm})
	r.Register(KeyBinding{Key: "enter", Focus: []focusArea{focusQuality, focusHours}, Handler: submitForm})
	r.Register(KeyBinding{Key: "esc", Description: "cancel edit", Focus: formFocus, Handler: func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		return m.cancelEdit()
	}})

	quality := []focusArea{focusQuality}
	r.Register(KeyBinding{Key: "left", Label: "←/→", Description: "quality", Focus: quality, Handler: func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		m.form.SetQuality(m.form.Quality().Prev())
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "right", Focus: quality, Handler: func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		m.form.SetQuality(m.form.Quality().Next())
		return m, nil, true
	}})
	for i, q := range models.Qualities {
		q := q
		key := string(rune('1' + i))
		r.Register(KeyBinding{Key: key, Focus: quality, Handler: func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
			m.form.SetQuality(q)
			return m, nil, true
		}})
	}

	moveUp := func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		m.history.Move(-1, m.repo.Len())
		return m, nil, true
	}
	moveDown := func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		m.history.Move(1, m.repo.Len())
		return m, nil, true
	}
	r.Register(KeyBinding{Key: "up", Label: "↑/↓", Description: "move", Focus: historyFocus, Handler: moveUp})
	r.Register(KeyBinding{Key: "k", Focus: historyFocus, Handler: moveUp})
	r.Register(KeyBinding{Key: "down", Focus: historyFocus, Handler: moveDown})
	r.Register(KeyBinding{Key: "j", Focus: historyFocus, Handler: moveDown})

	edit := func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		next, cmd := m.selectForEdit()
		return next, cmd, true
	}
	r.Register(KeyBinding{Key: "e", Description: "edit", Focus: historyFocus, Handler: edit})
	r.Register(KeyBinding{Key: "enter", Focus: historyFocus, Handler: edit})
	r.Register(KeyBinding{Key: "d", Description: "delete", Focus: historyFocus, Handler: func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		next, cmd := m.requestDelete()
		return next, cmd, true
	}})
	r.Register(KeyBinding{Key: "q", Description: "quit", Focus: historyFocus, Handler: func(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
		return m, tea.Quit, true
	}})

	return r
}

func submitForm(m TrackerModel, _ string) (TrackerModel, tea.Cmd, bool) {
	next, cmd := m.saveForm()
	return next, cmd, true
}
