// Package validation checks habit and log fields before they reach storage.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/timeutil"
)

const maxNameLength = 100

// ValidateHabit checks the fields of a new or updated habit.
func ValidateHabit(habit models.Habit) error {
	name := strings.TrimSpace(habit.Name)
	if name == "" {
		return fmt.Errorf("habit name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("habit name must be %d characters or fewer", maxNameLength)
	}

	if !ValidCategory(habit.Category) {
		return fmt.Errorf("invalid category %q (valid: %s)", habit.Category, categoryList())
	}

	if habit.TargetMinutes < 0 {
		return fmt.Errorf("target minutes must not be negative")
	}

	return nil
}

// ValidateLogDuration checks a manually logged duration. Zero is allowed for
// marking a day without time; negative and oversized values are rejected.
func ValidateLogDuration(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if minutes > constants.MaxLogDurationMin {
		return fmt.Errorf("duration must be %d minutes or fewer", constants.MaxLogDurationMin)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

// ValidateReminderTime checks an HH:MM reminder time.
func ValidateReminderTime(value string) error {
	if _, err := time.Parse(constants.TimeFormat, value); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	return nil
}

// ValidateTimezone checks an IANA timezone name, or "Local".
func ValidateTimezone(name string) error {
	if !timeutil.ValidateTimezone(name) {
		return fmt.Errorf("invalid timezone %q", name)
	}
	return nil
}

// ValidCategory reports whether the category is one of the known set.
func ValidCategory(c models.Category) bool {
	for _, known := range models.Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidStatus reports whether the status is one of the known lifecycle states.
func ValidStatus(s models.Status) bool {
	switch s {
	case models.StatusActive, models.StatusPaused, models.StatusComplete, models.StatusArchived:
		return true
	}
	return false
}

func categoryList() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
