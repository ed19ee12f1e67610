package config

// Application and storage settings.
const (
	AppName        = "sleeplog"
	DBFileName     = "sleeplog.db"
	JSONFileName   = "sleep_entries.json"
	LogFileName    = "sleeplog.log"
	ConfigFileName = "config.yaml"
	StorageKey     = "sleep_entries"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Hours bounds, inclusive.
const (
	MinHours = 0
	MaxHours = 24
)

// Form defaults applied in create mode.
const (
	DefaultQuality = "great"
	DefaultHours   = 8
)

// User-facing messages.
const (
	HoursRangeMessage   = "Hours must be between 0 and 24."
	HoursNumberMessage  = "Hours must be a number."
	EmptyHistoryMessage = "No entries yet."
	ConfirmDeletePrompt = "Are you sure you want to delete this sleep entry? (y/n)"
)
