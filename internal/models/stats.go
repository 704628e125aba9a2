package models

// DailyStats is the read-time aggregation for a single calendar day.
// It is derived from logs, sessions, and the active habit set, never stored.
type DailyStats struct {
	Date            string         `json:"date"`
	TotalTime       int            `json:"total_time"` // minutes, logs + sessions
	CompletedHabits int            `json:"completed_habits"`
	TotalHabits     int            `json:"total_habits"`
	Progress        int            `json:"progress"` // percent, 0 when no active habits
	HabitTimeSpent  map[string]int `json:"habit_time_spent"`
	HabitStreaks    map[string]int `json:"habit_streaks"`
}

// WeeklyStat is one day's slice of the weekly overview.
type WeeklyStat struct {
	Day       string `json:"day"`  // Mon, Tue, ...
	Date      string `json:"date"` // YYYY-MM-DD
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	TotalTime int    `json:"total_time"` // minutes
}

// HabitShare is one habit's slice of a period analytics breakdown.
type HabitShare struct {
	HabitID    string  `json:"habit_id"`
	Habit      string  `json:"habit"`
	Hours      float64 `json:"hours"` // rounded to one decimal place
	Color      string  `json:"color"`
	Percentage int     `json:"percentage"` // share of the period total
}
