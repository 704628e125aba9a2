package models

import "time"

// Category groups habits for filtering and analytics
type Category string

const (
	CategoryDevelopment  Category = "development"
	CategoryLearning     Category = "learning"
	CategoryHealth       Category = "health"
	CategoryWellness     Category = "wellness"
	CategoryProductivity Category = "productivity"
	CategoryCreative     Category = "creative"
	CategorySocial       Category = "social"
	CategoryOther        Category = "other"
)

// Categories lists every valid habit category.
var Categories = []Category{
	CategoryDevelopment,
	CategoryLearning,
	CategoryHealth,
	CategoryWellness,
	CategoryProductivity,
	CategoryCreative,
	CategorySocial,
	CategoryOther,
}

// Status is a habit's lifecycle state
type Status string

const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusComplete Status = "completed"
	StatusArchived Status = "archived"
)

// Habit represents a recurring practice the owner tracks time against
type Habit struct {
	ID            string    `json:"id"`
	Owner         string    `json:"owner"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      Category  `json:"category"`
	TargetMinutes int       `json:"target_minutes"` // 0 means no daily target
	Status        Status    `json:"status"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HabitLog is a single day's record of time spent on a habit.
// At most one log exists per (habit, owner, date); repeated logging on the
// same day merges into the existing row.
type HabitLog struct {
	ID              string    `json:"id"`
	HabitID         string    `json:"habit_id"`
	Owner           string    `json:"owner"`
	Date            string    `json:"date"` // YYYY-MM-DD format
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	IsCompleted     bool      `json:"is_completed"`
	LoggedAt        time.Time `json:"logged_at"`
}

// HabitSession is a tracked stretch of time against a habit. At most one
// session per habit is active at any instant; starting a new one ends the
// previous one first.
type HabitSession struct {
	ID              string     `json:"id"`
	HabitID         string     `json:"habit_id"`
	Owner           string     `json:"owner"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	IsActive        bool       `json:"is_active"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
