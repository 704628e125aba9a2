package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/reminder"
)

type RemindCmd struct {
	Now bool `help:"Print the reminder immediately instead of running the daemon."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}
	loc, err := ctx.Location()
	if err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	daemon := reminder.New(ctx.Store, owner, loc, os.Stdout)

	if c.Now {
		daemon.Remind()
		return nil
	}

	if err := daemon.Start(settings.ReminderTime); err != nil {
		return err
	}
	fmt.Printf("Reminder daemon running, daily at %s. Press Ctrl+C to stop.\n", settings.ReminderTime)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	daemon.Stop()
	fmt.Println("Reminder daemon stopped.")
	return nil
}
