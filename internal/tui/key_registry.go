package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m TrackerModel, key string) (TrackerModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Label       string
	Handler     KeyHandler
	Description string
	Focus       []focusArea
	Priority    int
}

func (b KeyBinding) AppliesTo(focus focusArea) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, f := range b.Focus {
		if f == focus {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle runs the first binding for key that applies to the current focus
// and reports it handled.
func (r *HandlerRegistry) Handle(m TrackerModel, key string) (TrackerModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(focus focusArea) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(focus) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(focus focusArea) string {
	bindings := r.BindingsFor(focus)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		label := b.Label
		if label == "" {
			label = b.Key
		}
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
