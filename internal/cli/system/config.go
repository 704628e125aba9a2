package system

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/validation"
)

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println("Settings:")
	fmt.Printf("  owner:          %s\n", settings.Owner)
	fmt.Printf("  timezone:       %s\n", settings.Timezone)
	fmt.Printf("  default-target: %d minutes\n", settings.DefaultTargetMin)
	fmt.Printf("  reminder-time:  %s\n", settings.ReminderTime)
	return nil
}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"Setting key (owner|timezone|default-target|reminder-time)."`
	Value string `arg:"" help:"New value."`
}

func (c *ConfigSetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "owner":
		if c.Value == "" {
			return fmt.Errorf("owner cannot be empty")
		}
		settings.Owner = c.Value
	case "timezone":
		if err := validation.ValidateTimezone(c.Value); err != nil {
			return err
		}
		settings.Timezone = c.Value
	case "default-target":
		target, err := strconv.Atoi(c.Value)
		if err != nil || target < 0 {
			return fmt.Errorf("default-target must be a non-negative number of minutes")
		}
		settings.DefaultTargetMin = target
	case "reminder-time":
		if err := validation.ValidateReminderTime(c.Value); err != nil {
			return err
		}
		settings.ReminderTime = c.Value
	default:
		return fmt.Errorf("unknown setting %q (valid: owner, timezone, default-target, reminder-time)", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
