package habits

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/validation"
)

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit name or ID."`
	Name        *string `help:"New name."`
	Description *string `short:"d" help:"New description."`
	Category    *string `short:"c" help:"New category."`
	Target      *int    `short:"t" help:"New daily target in minutes."`
	Color       *string `help:"New hex color."`
	Icon        *string `help:"New icon name."`
	Status      *string `short:"s" help:"New status (active|paused|completed|archived)."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(owner, c.Habit)
	if err != nil {
		return err
	}

	if c.Name != nil {
		habit.Name = *c.Name
	}
	if c.Description != nil {
		habit.Description = *c.Description
	}
	if c.Category != nil {
		habit.Category = models.Category(*c.Category)
	}
	if c.Target != nil {
		habit.TargetMinutes = *c.Target
	}
	if c.Color != nil {
		habit.Color = *c.Color
	}
	if c.Icon != nil {
		habit.Icon = *c.Icon
	}
	if c.Status != nil {
		status := models.Status(*c.Status)
		if !validation.ValidStatus(status) {
			return fmt.Errorf("invalid status %q", *c.Status)
		}
		habit.Status = status
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return fmt.Errorf("invalid habit: %w", err)
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}
