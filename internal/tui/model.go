// Package tui is the interactive dashboard: today's habits with progress
// bars, live session tracking, the weekly overview, and analytics.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

type view int

const (
	viewDashboard view = iota
	viewWeek
	viewAnalytics
)

var viewNames = []string{"Today", "Week", "Analytics"}

// LogFormModel backs the huh form for logging time against a habit.
type LogFormModel struct {
	Duration string
	Notes    string
}

type Model struct {
	store storage.Provider
	owner string
	loc   *time.Location

	state  view
	keys   KeyMap
	help   help.Model
	cursor int
	bar    progress.Model

	habits   []models.Habit
	daily    models.DailyStats
	streaks  map[string]int
	active   []models.HabitSession
	week     []models.WeeklyStat
	shares   []models.HabitShare
	now      time.Time
	quitting bool
	width    int
	height   int
	err      error

	form     *huh.Form
	logForm  *LogFormModel
	logHabit *models.Habit
}

func NewModel(store storage.Provider, owner string, loc *time.Location) Model {
	m := Model{
		store: store,
		owner: owner,
		loc:   loc,
		state: viewDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		bar:   progress.New(progress.WithDefaultGradient()),
		now:   time.Now().In(loc),
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), refreshCmd())
}

func (m *Model) today() string {
	return m.now.Format(constants.DateFormat)
}

// activeSessionFor returns the running session for the habit, if any.
func (m *Model) activeSessionFor(habitID string) *models.HabitSession {
	for i := range m.active {
		if m.active[i].HabitID == habitID {
			return &m.active[i]
		}
	}
	return nil
}

func (m *Model) selectedHabit() *models.Habit {
	if m.cursor < 0 || m.cursor >= len(m.habits) {
		return nil
	}
	return &m.habits[m.cursor]
}
