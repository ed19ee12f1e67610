package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateLoading SessionState = iota
	StateTracker
)

type entriesLoadedMsg struct {
	err error
}

// MainModel is the root bubbletea model. It waits for the repository to
// load before handing control to the tracker.
type MainModel struct {
	state   SessionState
	ctx     context.Context
	repo    EntryRepository
	log     *zap.Logger
	tracker TrackerModel
	width   int
	height  int
}

func NewMainModel(ctx context.Context, repo EntryRepository, log *zap.Logger, opts Options) MainModel {
	if log == nil {
		log = zap.NewNop()
	}
	return MainModel{
		state:   StateLoading,
		ctx:     ctx,
		repo:    repo,
		log:     log,
		tracker: NewTrackerModel(ctx, repo, log, opts),
	}
}

func loadEntriesCmd(ctx context.Context, repo EntryRepository) tea.Cmd {
	return func() tea.Msg {
		return entriesLoadedMsg{err: repo.Initialize(ctx)}
	}
}

func (m MainModel) Init() tea.Cmd {
	return loadEntriesCmd(m.ctx, m.repo)
}

func (m MainModel) State() SessionState   { return m.state }
func (m MainModel) Tracker() TrackerModel { return m.tracker }

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case entriesLoadedMsg:
		m.state = StateTracker
		if msg.err != nil {
			m.tracker.setError("Saved entries could not be read, starting fresh", msg.err)
		}
		if m.width > 0 {
			next, _ := m.tracker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.tracker = next.(TrackerModel)
		}
		return m, m.tracker.Init()
	}

	if m.state != StateTracker {
		return m, nil
	}
	next, cmd := m.tracker.Update(msg)
	m.tracker = next.(TrackerModel)
	return m, cmd
}

func (m MainModel) View() string {
	switch m.state {
	case StateLoading:
		return fmt.Sprintf("\n  %s\n", "Loading sleep entries...")
	case StateTracker:
		return m.tracker.View()
	}
	return ""
}
