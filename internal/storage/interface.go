package storage

import (
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

// Provider is the data-store contract consumed by the CLI and TUI. Three
// implementations exist: sqlite (default), postgres, and a plain JSON file.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	CreateHabit(habit models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(owner, name string) (models.Habit, error)
	ListHabits(owner string, includeAll bool) ([]models.Habit, error)
	UpdateHabit(habit models.Habit) error
	DeleteHabit(id string) error

	// Logs. UpsertLog merges on conflict: a second log for the same
	// (habit, owner, date) sums durations, joins notes, and refreshes the
	// completion flag and timestamp, atomically.
	ListLogs(owner, date string) ([]models.HabitLog, error) // date "" lists all
	ListLogsRange(owner, from, to string) ([]models.HabitLog, error)
	UpsertLog(log models.HabitLog) (models.HabitLog, error)
	DeleteLogs(owner, date string) error // date "" clears all

	// Sessions. StartSession ends any active session for the habit in the
	// same transaction before creating the new one.
	ListActiveSessions(owner string) ([]models.HabitSession, error)
	ListSessionsBetween(owner string, start, end time.Time) ([]models.HabitSession, error)
	ListAllSessions(owner string) ([]models.HabitSession, error)
	StartSession(owner, habitID, notes string) (models.HabitSession, error)
	EndSession(id string) (models.HabitSession, error)
	DeleteSessionsBetween(owner string, start, end time.Time) error
	DeleteSessions(owner string) error

	// Utils
	GetConfigPath() string
}
