package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Selected  lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
	Note      lipgloss.Style
	Point     lipgloss.Style
	Line      lipgloss.Style
	Axis      lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(0, 1),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Note:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Point:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Line:      lipgloss.NewStyle().Foreground(lipgloss.Color("104")),
		Axis:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(0, 1),
		Border:    lipgloss.Color("62"),                                            // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("253")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")), // Comment
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Note:      lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Italic(true), // Yellow
		Point:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),   // Orange
		Line:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Axis:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true),
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func (t Theme) box(width int, focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = lipgloss.Color("205")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)
}
