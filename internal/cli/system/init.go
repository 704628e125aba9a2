package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

type InitCmd struct {
	Owner    string `short:"o" help:"Owner identity for all habit data." required:""`
	Timezone string `help:"IANA timezone for day boundaries." default:"Local"`
	Force    bool   `help:"Force reset by deleting an existing local database first."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if err := ctx.Store.SaveSettings(models.Settings{
		Owner:            c.Owner,
		Timezone:         c.Timezone,
		DefaultTargetMin: constants.DefaultTargetMin,
		ReminderTime:     constants.DefaultReminderTime,
	}); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Initialized habitual storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Owner: %s, timezone: %s\n", c.Owner, c.Timezone)
	return nil
}
