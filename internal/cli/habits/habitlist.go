package habits

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/timeutil"
)

type HabitListCmd struct {
	All     bool `short:"a" help:"Include paused, completed, and archived habits."`
	ShowIDs bool `help:"Show habit IDs." name:"show-ids"`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.ListHabits(owner, c.All)
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitual habit add <name>'.")
		return nil
	}

	fmt.Println("Habits:")
	for _, habit := range habits {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", habit.ID)
		}

		targetStr := "no target"
		if habit.TargetMinutes > 0 {
			targetStr = timeutil.FormatMinutes(habit.TargetMinutes) + "/day"
		}

		fmt.Printf("  [%s] %s%s - %s (%s)\n", habit.Status, habit.Name, idStr, targetStr, habit.Category)
		if habit.Description != "" {
			fmt.Printf("      %s\n", habit.Description)
		}
	}

	return nil
}
