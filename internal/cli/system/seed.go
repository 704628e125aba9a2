package system

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/seed"
)

type SeedCmd struct {
	HabitsOnly bool `help:"Seed sample habits without generating logs."`
}

func (c *SeedCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}
	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	if c.HabitsOnly {
		n, err := seed.Habits(ctx.Store, owner)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("Habits already exist, nothing seeded.")
			return nil
		}
		fmt.Printf("Seeded %d sample habits.\n", n)
		return nil
	}

	habits, logs, err := seed.All(ctx.Store, owner, loc)
	if err != nil {
		return err
	}
	if habits == 0 && logs == 0 {
		fmt.Println("Data already exists, nothing seeded.")
		return nil
	}
	fmt.Printf("Seeded %d sample habits and %d logs for the past week.\n", habits, logs)
	return nil
}
