// Package reminder runs the daily check-in reminder. A cron job fires at the
// owner's configured reminder time and prints a summary of the day so far.
package reminder

import (
	"fmt"
	"io"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/stats"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/timeutil"
)

type Daemon struct {
	store storage.Provider
	owner string
	loc   *time.Location
	cron  *cron.Cron
	out   io.Writer
}

func New(store storage.Provider, owner string, loc *time.Location, out io.Writer) *Daemon {
	return &Daemon{
		store: store,
		owner: owner,
		loc:   loc,
		cron:  cron.New(cron.WithLocation(loc)),
		out:   out,
	}
}

// Start schedules the daily reminder at the given HH:MM time and begins the
// cron loop in the background.
func (d *Daemon) Start(reminderTime string) error {
	at, err := time.Parse(constants.TimeFormat, reminderTime)
	if err != nil {
		return fmt.Errorf("invalid reminder time %q: %w", reminderTime, err)
	}

	spec := fmt.Sprintf("%d %d * * *", at.Minute(), at.Hour())
	if _, err := d.cron.AddFunc(spec, d.remind); err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}

	d.cron.Start()
	logger.Info("Reminder scheduled", "time", reminderTime, "timezone", d.loc.String())
	return nil
}

// Stop halts the cron loop and waits for any running job to finish.
func (d *Daemon) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
}

// Remind prints the day summary immediately, outside the schedule.
func (d *Daemon) Remind() {
	d.remind()
}

func (d *Daemon) remind() {
	now := time.Now().In(d.loc)
	date := now.Format(constants.DateFormat)

	habits, err := d.store.ListHabits(d.owner, false)
	if err != nil {
		logger.Error("Reminder failed to list habits", "error", err)
		return
	}
	logs, err := d.store.ListLogs(d.owner, date)
	if err != nil {
		logger.Error("Reminder failed to list logs", "error", err)
		return
	}

	dayStart, dayEnd, err := timeutil.DayBounds(date, d.loc)
	if err != nil {
		logger.Error("Reminder failed to compute day bounds", "error", err)
		return
	}
	sessions, err := d.store.ListSessionsBetween(d.owner, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		logger.Error("Reminder failed to list sessions", "error", err)
		return
	}

	daily := stats.ComputeDaily(date, logs, sessions, habits)

	fmt.Fprintf(d.out, "Daily check-in for %s\n", date)
	fmt.Fprintf(d.out, "  %d/%d habits completed (%d%%)\n", daily.CompletedHabits, daily.TotalHabits, stats.CompletionPercent(daily.CompletedHabits, daily.TotalHabits))
	fmt.Fprintf(d.out, "  %s tracked today\n", timeutil.FormatMinutes(daily.TotalTime))

	if daily.CompletedHabits < daily.TotalHabits {
		remaining := daily.TotalHabits - daily.CompletedHabits
		fmt.Fprintf(d.out, "  %d habit(s) still waiting. There is time yet today.\n", remaining)
	}
}
