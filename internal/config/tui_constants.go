package config

// Layout constants.
const (
	// DefaultWidth is used until the first window size message arrives.
	DefaultWidth = 72

	// MinPaneWidth is the narrowest a pane is rendered.
	MinPaneWidth = 30

	// ChartHeight is the number of plot rows in the trend chart.
	ChartHeight = 8

	// ChartAxisWidth is the width reserved for y-axis labels.
	ChartAxisWidth = 4
)

// Display limits.
const (
	// MaxVisibleEntries limits history items shown before scrolling.
	MaxVisibleEntries = 6

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// HoursCharLimit bounds the hours input.
	HoursCharLimit = 6

	// MaxNoteLength is the maximum note length.
	MaxNoteLength = 500

	// NoteHeight is the visible height of the note textarea.
	NoteHeight = 3
)
