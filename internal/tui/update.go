package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/stats"
	"github.com/julianstephens/habitual/internal/timeutil"
	"github.com/julianstephens/habitual/internal/validation"
)

// tickMsg drives the live elapsed display for active sessions.
type tickMsg time.Time

// refreshMsg reloads store data so concurrent writers show up.
type refreshMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func refreshCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// reload pulls everything the dashboard shows from the store.
func (m *Model) reload() {
	m.now = time.Now().In(m.loc)
	today := m.today()

	habits, err := m.store.ListHabits(m.owner, false)
	if err != nil {
		m.err = err
		return
	}
	m.habits = habits

	logs, err := m.store.ListLogs(m.owner, today)
	if err != nil {
		m.err = err
		return
	}

	dayStart, dayEnd, err := timeutil.DayBounds(today, m.loc)
	if err != nil {
		m.err = err
		return
	}
	sessions, err := m.store.ListSessionsBetween(m.owner, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		m.err = err
		return
	}

	m.daily = stats.ComputeDaily(today, logs, sessions, habits)

	active, err := m.store.ListActiveSessions(m.owner)
	if err != nil {
		m.err = err
		return
	}
	m.active = active

	allLogs, err := m.store.ListLogs(m.owner, "")
	if err != nil {
		m.err = err
		return
	}
	allSessions, err := m.store.ListAllSessions(m.owner)
	if err != nil {
		m.err = err
		return
	}
	m.streaks = stats.Streaks(habits, stats.ActivityDates(allLogs, allSessions, m.loc), today)
	m.daily.HabitStreaks = m.streaks

	m.reloadWeek(allLogs)
	m.shares = stats.PeriodShares(habits, weekLogs(allLogs, m.now))

	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.err = nil
}

func (m *Model) reloadWeek(allLogs []models.HabitLog) {
	byDate := make(map[string][]models.HabitLog)
	for _, l := range allLogs {
		byDate[l.Date] = append(byDate[l.Date], l)
	}

	m.week = m.week[:0]
	for i := 6; i >= 0; i-- {
		date := m.now.AddDate(0, 0, -i).Format(constants.DateFormat)
		m.week = append(m.week, stats.SummarizeDay(date, byDate[date], len(m.habits)))
	}
}

func weekLogs(allLogs []models.HabitLog, now time.Time) []models.HabitLog {
	from := now.AddDate(0, 0, -6).Format(constants.DateFormat)
	var out []models.HabitLog
	for _, l := range allLogs {
		if l.Date >= from {
			out = append(out, l)
		}
	}
	return out
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-40, 40)
		return m, nil

	case tickMsg:
		m.now = time.Now().In(m.loc)
		return m, tickCmd()

	case refreshMsg:
		m.reload()
		return m, refreshCmd()
	}

	// An open form owns the input until submitted or cancelled.
	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % 3
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state + 2) % 3
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.state == viewDashboard && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.state == viewDashboard && m.cursor < len(m.habits)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Log):
		if m.state == viewDashboard {
			if habit := m.selectedHabit(); habit != nil {
				m.openLogForm(*habit)
			}
		}
		return m, m.formInit()

	case key.Matches(msg, m.keys.Track):
		if m.state == viewDashboard {
			m.toggleTracking()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) openLogForm(habit models.Habit) {
	m.logHabit = &habit
	m.logForm = &LogFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes spent on "+habit.Name).
				Value(&m.logForm.Duration).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					return validation.ValidateLogDuration(n)
				}),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&m.logForm.Notes),
		),
	)
}

func (m Model) formInit() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.logForm = nil
		m.logHabit = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitLogForm()
		m.form = nil
		m.reload()
	}
	return m, cmd
}

func (m *Model) submitLogForm() {
	if m.logForm == nil || m.logHabit == nil {
		return
	}

	minutes, err := strconv.Atoi(m.logForm.Duration)
	if err != nil {
		m.err = err
		return
	}

	_, err = m.store.UpsertLog(models.HabitLog{
		ID:              uuid.New().String(),
		HabitID:         m.logHabit.ID,
		Owner:           m.owner,
		Date:            m.today(),
		DurationMinutes: minutes,
		Notes:           m.logForm.Notes,
	})
	if err != nil {
		m.err = err
	}

	m.logForm = nil
	m.logHabit = nil
}

// toggleTracking starts a session for the selected habit, or ends its
// running one.
func (m *Model) toggleTracking() {
	habit := m.selectedHabit()
	if habit == nil {
		return
	}

	if sess := m.activeSessionFor(habit.ID); sess != nil {
		if _, err := m.store.EndSession(sess.ID); err != nil {
			m.err = err
			return
		}
	} else {
		if _, err := m.store.StartSession(m.owner, habit.ID, ""); err != nil {
			m.err = err
			return
		}
	}
	m.reload()
}
