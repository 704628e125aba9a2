package views

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/stats"
	"github.com/julianstephens/habitual/internal/timeutil"
)

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	owner, err := ctx.Owner()
	if err != nil {
		return err
	}
	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.ListHabits(owner, false)
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	from := now.AddDate(0, 0, -6).Format(constants.DateFormat)
	to := now.Format(constants.DateFormat)

	logs, err := ctx.Store.ListLogsRange(owner, from, to)
	if err != nil {
		return err
	}

	byDate := make(map[string][]models.HabitLog)
	for _, l := range logs {
		byDate[l.Date] = append(byDate[l.Date], l)
	}

	fmt.Println("Last 7 days:")
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(constants.DateFormat)
		stat := stats.SummarizeDay(date, byDate[date], len(habits))
		fmt.Printf("  %s %s  %d/%d completed  %s\n",
			stat.Day, stat.Date, stat.Completed, stat.Total, timeutil.FormatMinutes(stat.TotalTime))
	}

	return nil
}
