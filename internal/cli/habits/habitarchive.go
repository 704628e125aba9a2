package habits

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
)

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(owner, c.Habit)
	if err != nil {
		return err
	}

	if habit.Status == models.StatusArchived {
		fmt.Printf("Habit %q is already archived.\n", habit.Name)
		return nil
	}

	habit.Status = models.StatusArchived
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s\n", habit.Name)
	return nil
}
