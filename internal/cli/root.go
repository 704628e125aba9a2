package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/timeutil"
)

// Context carries the loaded store into every command's Run method.
type Context struct {
	Store storage.Provider
}

// Owner returns the configured owner identity. Commands that touch habit
// data fail with ErrNotAuthenticated until an owner is set.
func (c *Context) Owner() (string, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Owner == "" {
		return "", fmt.Errorf("%w: set an owner with 'habitual config set owner <name>'", storage.ErrNotAuthenticated)
	}
	return settings.Owner, nil
}

// Location returns the owner's configured timezone.
func (c *Context) Location() (*time.Location, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	loc, err := timeutil.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid configured timezone %q: %w", settings.Timezone, err)
	}
	return loc, nil
}

// Today returns today's date in the owner's timezone.
func (c *Context) Today() (string, error) {
	loc, err := c.Location()
	if err != nil {
		return "", err
	}
	return time.Now().In(loc).Format("2006-01-02"), nil
}

// ResolveHabit finds a habit by ID or, failing that, by exact name.
func (c *Context) ResolveHabit(owner, ref string) (models.Habit, error) {
	if habit, err := c.Store.GetHabit(ref); err == nil {
		if habit.Owner != owner {
			return models.Habit{}, fmt.Errorf("habit %s: %w", ref, storage.ErrNotFound)
		}
		return habit, nil
	}
	return c.Store.GetHabitByName(owner, ref)
}

// PerformAutomaticBackup snapshots the database before destructive commands.
// Failures are logged, not surfaced.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") || !strings.HasSuffix(path, ".db") {
		return
	}

	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
