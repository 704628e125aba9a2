package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+)h`)
	minutesPattern = regexp.MustCompile(`(\d+)m`)
)

// FormatMinutes renders a minute count as "2h 5m", or "45m" when under an
// hour. Inverse of ParseMinutes for any non-negative count.
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// ParseMinutes parses strings like "1h 30m" or "45m" into total minutes.
// Missing tokens count as 0.
func ParseMinutes(s string) int {
	total := 0
	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			total += h * 60
		}
	}
	if m := minutesPattern.FindStringSubmatch(s); m != nil {
		if mins, err := strconv.Atoi(m[1]); err == nil {
			total += mins
		}
	}
	return total
}

// SessionMinutes converts a session's wall-clock span to whole minutes,
// rounding half away from zero: 90s is 2 minutes, 89s is 1.
func SessionMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// TodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. "Today" is determined by the owner's configured timezone, not the
// system timezone, so logs and session day windows always agree.
func TodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// DayBounds returns the [start, end) instants of a calendar day in the given
// timezone. Session rows belong to the day their start time falls inside.
func DayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
