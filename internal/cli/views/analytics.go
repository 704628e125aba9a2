package views

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/stats"
)

type AnalyticsCmd struct {
	Period string `arg:"" optional:"" help:"Period to analyze (week|month|all)." default:"week"`
}

func (c *AnalyticsCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}
	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.ListHabits(owner, false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No active habits.")
		return nil
	}

	now := time.Now().In(loc)
	var from string
	switch c.Period {
	case "week":
		from = now.AddDate(0, 0, -6).Format(constants.DateFormat)
	case "month":
		from = now.AddDate(0, -1, 0).Format(constants.DateFormat)
	case "all":
		from = "0001-01-01"
	default:
		return fmt.Errorf("invalid period %q (valid: week, month, all)", c.Period)
	}

	logs, err := ctx.Store.ListLogsRange(owner, from, now.Format(constants.DateFormat))
	if err != nil {
		return err
	}

	shares := stats.PeriodShares(habits, logs)

	today := now.Format(constants.DateFormat)
	allLogs, err := ctx.Store.ListLogs(owner, "")
	if err != nil {
		return err
	}
	allSessions, err := ctx.Store.ListAllSessions(owner)
	if err != nil {
		return err
	}
	streaks := stats.Streaks(habits, stats.ActivityDates(allLogs, allSessions, loc), today)

	fmt.Printf("Time distribution (%s):\n", c.Period)
	for _, share := range shares {
		fmt.Printf("  %-20s %5.1fh  %3d%%", share.Habit, share.Hours, share.Percentage)
		if streak := streaks[share.HabitID]; streak > 0 {
			fmt.Printf("  %d-day streak", streak)
		}
		fmt.Println()
	}

	return nil
}
