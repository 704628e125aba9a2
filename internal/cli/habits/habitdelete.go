package habits

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
)

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Force bool   `short:"f" help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(owner, c.Habit)
	if err != nil {
		return err
	}

	if !c.Force && !cli.Confirm(fmt.Sprintf("Delete habit %q and all of its logs and sessions?", habit.Name)) {
		fmt.Println("Aborted.")
		return nil
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
