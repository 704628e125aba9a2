package habits

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/validation"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Short description."`
	Category    string `short:"c" help:"Category (development|learning|health|wellness|productivity|creative|social|other)." default:"other"`
	Target      int    `short:"t" help:"Daily target in minutes. 0 means no target." default:"-1"`
	Color       string `help:"Hex color for the dashboard." default:"#10B981"`
	Icon        string `help:"Icon name."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	target := c.Target
	if target < 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		target = settings.DefaultTargetMin
	}

	now := time.Now().UTC()
	habit := models.Habit{
		ID:            uuid.New().String(),
		Owner:         owner,
		Name:          c.Name,
		Description:   c.Description,
		Category:      models.Category(c.Category),
		TargetMinutes: target,
		Status:        models.StatusActive,
		Color:         c.Color,
		Icon:          c.Icon,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return fmt.Errorf("invalid habit: %w", err)
	}

	if _, err := ctx.Store.GetHabitByName(owner, c.Name); err == nil {
		return fmt.Errorf("a habit named %q already exists", c.Name)
	}

	if err := ctx.Store.CreateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}
