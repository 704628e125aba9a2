// Package logs implements the manual time-logging command.
package logs

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/timeutil"
	"github.com/julianstephens/habitual/internal/validation"
)

type LogCmd struct {
	Habit    string `arg:"" help:"Habit name or ID."`
	Duration string `arg:"" help:"Time spent, as minutes or a duration like '1h 30m'."`
	Date     string `short:"D" help:"Date to log against (YYYY-MM-DD). Defaults to today."`
	Notes    string `short:"n" help:"Notes for the log entry."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(owner, c.Habit)
	if err != nil {
		return err
	}

	minutes, err := parseDuration(c.Duration)
	if err != nil {
		return err
	}
	if err := validation.ValidateLogDuration(minutes); err != nil {
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

	merged, err := ctx.Store.UpsertLog(models.HabitLog{
		ID:              uuid.New().String(),
		HabitID:         habit.ID,
		Owner:           owner,
		Date:            date,
		DurationMinutes: minutes,
		Notes:           c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s against %s on %s (day total: %s)\n",
		timeutil.FormatMinutes(minutes), habit.Name, date, timeutil.FormatMinutes(merged.DurationMinutes))
	return nil
}

func parseDuration(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if n := timeutil.ParseMinutes(s); n > 0 {
		return n, nil
	}
	return 0, fmt.Errorf("invalid duration %q, expected minutes or a form like '1h 30m'", s)
}
