package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/timeutil"
)

type ClearTodayCmd struct {
	Force bool `short:"f" help:"Skip confirmation."`
}

func (c *ClearTodayCmd) Run(ctx *Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}
	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	today := time.Now().In(loc).Format("2006-01-02")

	if !c.Force && !Confirm(fmt.Sprintf("Clear all logs and sessions for %s?", today)) {
		fmt.Println("Aborted.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteLogs(owner, today); err != nil {
		return err
	}

	dayStart, dayEnd, err := timeutil.DayBounds(today, loc)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteSessionsBetween(owner, dayStart.UTC(), dayEnd.UTC()); err != nil {
		return err
	}

	fmt.Printf("Cleared today's data for %s.\n", today)
	return nil
}

type ClearAllCmd struct {
	Force bool `short:"f" help:"Skip confirmation."`
}

func (c *ClearAllCmd) Run(ctx *Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	if !c.Force && !Confirm("Clear ALL logs and sessions? Habits are kept.") {
		fmt.Println("Aborted.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteLogs(owner, ""); err != nil {
		return err
	}
	if err := ctx.Store.DeleteSessions(owner); err != nil {
		return err
	}

	fmt.Println("Cleared all logged data.")
	return nil
}

func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}
