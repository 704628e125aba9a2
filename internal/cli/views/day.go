// Package views implements the read-only dashboard commands.
package views

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/stats"
	"github.com/julianstephens/habitual/internal/timeutil"
	"github.com/julianstephens/habitual/internal/validation"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}
	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		if date, err = ctx.Today(); err != nil {
			return err
		}
	}
	if err := validation.ValidateDate(date); err != nil {
		return err
	}

	habits, err := ctx.Store.ListHabits(owner, false)
	if err != nil {
		return err
	}
	logs, err := ctx.Store.ListLogs(owner, date)
	if err != nil {
		return err
	}

	dayStart, dayEnd, err := timeutil.DayBounds(date, loc)
	if err != nil {
		return err
	}
	sessions, err := ctx.Store.ListSessionsBetween(owner, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return err
	}

	daily := stats.ComputeDaily(date, logs, sessions, habits)

	allLogs, err := ctx.Store.ListLogs(owner, "")
	if err != nil {
		return err
	}
	allSessions, err := ctx.Store.ListAllSessions(owner)
	if err != nil {
		return err
	}
	streaks := stats.Streaks(habits, stats.ActivityDates(allLogs, allSessions, loc), date)

	fmt.Printf("%s: %d/%d habits completed (%d%%), %s tracked\n",
		date, daily.CompletedHabits, daily.TotalHabits, daily.Progress, timeutil.FormatMinutes(daily.TotalTime))

	if len(habits) == 0 {
		fmt.Println("No active habits.")
		return nil
	}

	for _, habit := range habits {
		spent := daily.HabitTimeSpent[habit.ID]
		line := fmt.Sprintf("  %-20s %s", habit.Name, timeutil.FormatMinutes(spent))
		if habit.TargetMinutes > 0 {
			line += fmt.Sprintf(" / %s (%d%%)", timeutil.FormatMinutes(habit.TargetMinutes), stats.Progress(spent, habit.TargetMinutes))
		}
		if streak := streaks[habit.ID]; streak > 1 {
			line += fmt.Sprintf("  %d-day streak", streak)
		}
		fmt.Println(line)
	}

	return nil
}
