package tui

type ModalType int

const (
	ModalNone ModalType = iota
	ModalConfirmDelete
)

type ModalState interface {
	Type() ModalType
}

// ConfirmDeleteState asks before an entry is removed.
type ConfirmDeleteState struct {
	EntryID string
}

func (s *ConfirmDeleteState) Type() ModalType { return ModalConfirmDelete }

// ModalManager tracks the open modal, if any.
type ModalManager struct {
	current ModalState
}

func newModalManager() *ModalManager {
	return &ModalManager{}
}

func (m *ModalManager) ActiveModal() ModalType {
	if m.current == nil {
		return ModalNone
	}
	return m.current.Type()
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) Open(state ModalState) {
	m.current = state
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) Is(t ModalType) bool {
	return m.current != nil && m.current.Type() == t
}

func (m *ModalManager) ConfirmDeleteState() (*ConfirmDeleteState, bool) {
	state, ok := m.current.(*ConfirmDeleteState)
	return state, ok
}
