package tui

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/quotes"
	"github.com/julianstephens/habitual/internal/stats"
	"github.com/julianstephens/habitual/internal/timeutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case viewDashboard:
		b.WriteString(m.renderDashboard())
	case viewWeek:
		b.WriteString(m.renderWeek())
	case viewAnalytics:
		b.WriteString(m.renderAnalytics())
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()))
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range viewNames {
		if view(i) == m.state {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.now.Format("Monday, January 2")))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("  %d/%d completed (%d%%)  %s tracked\n\n",
		m.daily.CompletedHabits, m.daily.TotalHabits, m.daily.Progress, timeutil.FormatMinutes(m.daily.TotalTime))))

	if len(m.habits) == 0 {
		b.WriteString(subtleStyle.Render("No active habits. Add one with 'habitual habit add <name>'.\n"))
		return b.String()
	}

	for i, habit := range m.habits {
		cursor := "  "
		name := habit.Name
		if i == m.cursor {
			cursor = "> "
			name = selectedStyle.Render(name)
		}

		spent := m.daily.HabitTimeSpent[habit.ID]
		line := fmt.Sprintf("%s%-24s %8s", cursor, name, timeutil.FormatMinutes(spent))

		if habit.TargetMinutes > 0 {
			// The bar clamps at full; the percentage text does not, so
			// overshooting a target reads as e.g. 150%.
			bar := m.bar.ViewAs(stats.ClampFraction(spent, habit.TargetMinutes))
			line += fmt.Sprintf("  %s %d%%", bar, stats.Progress(spent, habit.TargetMinutes))
		}

		if sess := m.activeSessionFor(habit.ID); sess != nil {
			elapsed := m.now.Sub(sess.StartTime)
			line += trackingStyle.Render(fmt.Sprintf("  ● %02d:%02d:%02d",
				int(elapsed.Hours()), int(elapsed.Minutes())%60, int(elapsed.Seconds())%60))
		}

		if streak := m.streaks[habit.ID]; streak > 1 {
			line += streakStyle.Render(fmt.Sprintf("  %dd streak", streak))
		}

		b.WriteString(line + "\n")
	}

	q := quotes.OfDay(m.now)
	b.WriteString("\n" + quoteStyle.Render(fmt.Sprintf("%q - %s", q.Text, q.Author)) + "\n")

	return b.String()
}

func (m Model) renderWeek() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Last 7 days") + "\n\n")
	for _, day := range m.week {
		bar := ""
		if day.Total > 0 {
			bar = m.bar.ViewAs(float64(day.Completed) / float64(day.Total))
		}
		b.WriteString(fmt.Sprintf("  %s %s  %d/%d  %8s  %s\n",
			day.Day, day.Date, day.Completed, day.Total, timeutil.FormatMinutes(day.TotalTime), bar))
	}
	return b.String()
}

func (m Model) renderAnalytics() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Time distribution (last 7 days)") + "\n\n")
	if len(m.shares) == 0 {
		b.WriteString(subtleStyle.Render("Nothing tracked yet.\n"))
		return b.String()
	}

	for _, share := range m.shares {
		line := fmt.Sprintf("  %-24s %5.1fh  %3d%%", share.Habit, share.Hours, share.Percentage)
		if streak := m.streaks[share.HabitID]; streak > 0 {
			line += streakStyle.Render(fmt.Sprintf("  %dd streak", streak))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
