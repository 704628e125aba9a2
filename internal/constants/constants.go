package constants

const (
	AppName            = "habitual"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitual/habitual.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Default settings
	DefaultTimezone     = "Local"
	DefaultTargetMin    = 30
	DefaultReminderTime = "20:00"

	// Log duration bounds enforced at the CLI/TUI boundary, not by the store
	MinLogDurationMin = 1
	MaxLogDurationMin = 480

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitual-"
	BackupFileSuffix = ".db"
)
