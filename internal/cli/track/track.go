// Package track implements the live session commands.
package track

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/timeutil"
	"github.com/julianstephens/habitual/internal/tracker"
)

type TrackStartCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Notes string `short:"n" help:"Notes for the session."`
	Watch bool   `short:"w" help:"Stay attached and show elapsed time; Ctrl+C stops the session."`
}

func (c *TrackStartCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(owner, c.Habit)
	if err != nil {
		return err
	}

	sess, err := ctx.Store.StartSession(owner, habit.ID, c.Notes)
	if err != nil {
		return err
	}

	fmt.Printf("Started tracking %s at %s\n", habit.Name, sess.StartTime.Local().Format("15:04"))
	if !c.Watch {
		return nil
	}

	tick := tracker.New()
	tick.Start(sess, func(elapsed time.Duration) {
		fmt.Printf("\r%s  %02d:%02d:%02d ", habit.Name,
			int(elapsed.Hours()), int(elapsed.Minutes())%60, int(elapsed.Seconds())%60)
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	tick.Stop()
	fmt.Println()

	ended, err := ctx.Store.EndSession(sess.ID)
	if err != nil {
		return err
	}
	minutes := 0
	if ended.DurationMinutes != nil {
		minutes = *ended.DurationMinutes
	}
	fmt.Printf("Stopped tracking %s: %s\n", habit.Name, timeutil.FormatMinutes(minutes))
	return nil
}

type TrackStopCmd struct {
	Habit string `arg:"" optional:"" help:"Habit name or ID. Defaults to the only active session."`
}

func (c *TrackStopCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	active, err := ctx.Store.ListActiveSessions(owner)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		fmt.Println("No active session.")
		return nil
	}

	target := active[0]
	if c.Habit != "" {
		habit, err := ctx.ResolveHabit(owner, c.Habit)
		if err != nil {
			return err
		}
		found := false
		for _, sess := range active {
			if sess.HabitID == habit.ID {
				target = sess
				found = true
				break
			}
		}
		if !found {
			fmt.Printf("No active session for %s.\n", habit.Name)
			return nil
		}
	} else if len(active) > 1 {
		return fmt.Errorf("multiple active sessions, name the habit to stop")
	}

	ended, err := ctx.Store.EndSession(target.ID)
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabit(ended.HabitID)
	name := ended.HabitID
	if err == nil {
		name = habit.Name
	}

	minutes := 0
	if ended.DurationMinutes != nil {
		minutes = *ended.DurationMinutes
	}
	fmt.Printf("Stopped tracking %s: %s\n", name, timeutil.FormatMinutes(minutes))
	return nil
}

type TrackStatusCmd struct{}

func (c *TrackStatusCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}

	active, err := ctx.Store.ListActiveSessions(owner)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		fmt.Println("No active session.")
		return nil
	}

	for _, sess := range active {
		name := sess.HabitID
		if habit, err := ctx.Store.GetHabit(sess.HabitID); err == nil {
			name = habit.Name
		}
		elapsed := time.Since(sess.StartTime)
		fmt.Printf("Tracking %s for %s (started %s)\n",
			name, timeutil.FormatMinutes(int(elapsed.Minutes())), sess.StartTime.Local().Format("15:04"))
	}
	return nil
}
