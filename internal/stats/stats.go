// Package stats is the pure derivation layer for the dashboard's numbers:
// progress percentages, daily aggregates, streaks, and period breakdowns.
// It performs no I/O; callers fetch rows from storage and hand them in.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

// Progress returns the completion percentage for time spent against a target.
// The result is intentionally uncapped: spending 150 minutes on a 100 minute
// target reports 150. A target of zero or less yields 0 rather than dividing
// by zero.
func Progress(timeSpentMinutes, targetMinutes int) int {
	if targetMinutes <= 0 {
		return 0
	}
	return int(math.Round(float64(timeSpentMinutes) / float64(targetMinutes) * 100))
}

// ClampFraction returns the fill fraction for a progress bar, clamped to
// [0, 1]. Display surfaces clamp the bar while still showing the raw
// Progress value as text.
func ClampFraction(timeSpentMinutes, targetMinutes int) float64 {
	if targetMinutes <= 0 {
		return 0
	}
	f := float64(timeSpentMinutes) / float64(targetMinutes)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ComputeDaily aggregates one day's logs and sessions against the owner's
// active habit set.
//
// Total time sums log durations and session durations; a session recorded
// without a duration (implicitly ended) contributes 0. Only a log's
// completion flag counts toward completedHabits, never a session. Per-habit
// time is additive across logs and sessions: manually logged time and
// tracked time on the same day are independently recorded and both count.
//
// HabitStreaks is left for the caller to fill via Streaks, which needs
// history beyond the single day.
func ComputeDaily(date string, logs []models.HabitLog, sessions []models.HabitSession, activeHabits []models.Habit) models.DailyStats {
	stats := models.DailyStats{
		Date:           date,
		TotalHabits:    len(activeHabits),
		HabitTimeSpent: make(map[string]int),
		HabitStreaks:   make(map[string]int),
	}

	for _, l := range logs {
		stats.TotalTime += l.DurationMinutes
		stats.HabitTimeSpent[l.HabitID] += l.DurationMinutes
		if l.IsCompleted {
			stats.CompletedHabits++
		}
	}

	for _, s := range sessions {
		if s.DurationMinutes == nil {
			// still-running or implicitly ended sessions have no duration yet
			stats.HabitTimeSpent[s.HabitID] += 0
			continue
		}
		stats.TotalTime += *s.DurationMinutes
		stats.HabitTimeSpent[s.HabitID] += *s.DurationMinutes
	}

	stats.Progress = CompletionPercent(stats.CompletedHabits, stats.TotalHabits)

	return stats
}

// CompletionPercent is the habit-count completion percentage: completed out
// of total active, rounded, 0 when there are no active habits.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ActivityDates collects, per habit, the set of calendar days with any
// recorded time greater than zero. Log rows carry their own date; session
// rows belong to the day their start time falls on in the given location.
func ActivityDates(logs []models.HabitLog, sessions []models.HabitSession, loc *time.Location) map[string]map[string]bool {
	activity := make(map[string]map[string]bool)

	mark := func(habitID, date string) {
		if activity[habitID] == nil {
			activity[habitID] = make(map[string]bool)
		}
		activity[habitID][date] = true
	}

	for _, l := range logs {
		if l.DurationMinutes > 0 {
			mark(l.HabitID, l.Date)
		}
	}
	for _, s := range sessions {
		if s.DurationMinutes != nil && *s.DurationMinutes > 0 {
			mark(s.HabitID, s.StartTime.In(loc).Format(constants.DateFormat))
		}
	}

	return activity
}

// Streaks computes, per habit, the count of consecutive calendar days with
// activity, ending today. When today has no activity yet, the run ends on
// the most recent day that had any, so a streak is not zeroed mid-day. A
// habit with no recorded activity has streak 0.
func Streaks(habits []models.Habit, activity map[string]map[string]bool, today string) map[string]int {
	streaks := make(map[string]int, len(habits))

	todayDate, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		for _, h := range habits {
			streaks[h.ID] = 0
		}
		return streaks
	}

	for _, h := range habits {
		days := activity[h.ID]
		if len(days) == 0 {
			streaks[h.ID] = 0
			continue
		}

		// Anchor on today, or the most recent active day before it
		anchor := todayDate
		if !days[today] {
			latest := ""
			for d := range days {
				if d <= today && d > latest {
					latest = d
				}
			}
			if latest == "" {
				streaks[h.ID] = 0
				continue
			}
			anchor, _ = time.Parse(constants.DateFormat, latest)
		}

		count := 0
		for d := anchor; days[d.Format(constants.DateFormat)]; d = d.AddDate(0, 0, -1) {
			count++
		}
		streaks[h.ID] = count
	}

	return streaks
}

// SummarizeDay reduces one day's logs to the weekly-overview row.
func SummarizeDay(date string, logs []models.HabitLog, totalHabits int) models.WeeklyStat {
	stat := models.WeeklyStat{
		Date:  date,
		Total: totalHabits,
	}
	if d, err := time.Parse(constants.DateFormat, date); err == nil {
		stat.Day = d.Weekday().String()[:3]
	}
	for _, l := range logs {
		stat.TotalTime += l.DurationMinutes
		if l.IsCompleted {
			stat.Completed++
		}
	}
	return stat
}

// PeriodShares computes the per-habit share of total tracked hours over a set
// of logs, sorted by hours descending. Hours are rounded to one decimal
// place; percentages are shares of the period total, not of targets.
func PeriodShares(habits []models.Habit, logs []models.HabitLog) []models.HabitShare {
	minutesByHabit := make(map[string]int)
	for _, l := range logs {
		minutesByHabit[l.HabitID] += l.DurationMinutes
	}

	shares := make([]models.HabitShare, 0, len(habits))
	for _, h := range habits {
		hours := math.Round(float64(minutesByHabit[h.ID])/60*10) / 10
		shares = append(shares, models.HabitShare{
			HabitID: h.ID,
			Habit:   h.Name,
			Hours:   hours,
			Color:   h.Color,
		})
	}

	var totalHours float64
	for _, s := range shares {
		totalHours += s.Hours
	}
	if totalHours > 0 {
		for i := range shares {
			shares[i].Percentage = int(math.Round(shares[i].Hours / totalHours * 100))
		}
	}

	sort.Slice(shares, func(i, j int) bool {
		return shares[i].Hours > shares[j].Hours
	})

	return shares
}
