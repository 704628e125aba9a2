// Package seed populates a fresh install with sample habits and a week of
// logs so the dashboard has something to show.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

var nowFunc = time.Now

type sample struct {
	name        string
	description string
	category    models.Category
	targetMin   int
	color       string
	icon        string
}

var samples = []sample{
	{"Coding", "Daily programming and development work", models.CategoryDevelopment, 120, "#F59E0B", "code2"},
	{"Reading", "Reading books and articles", models.CategoryLearning, 60, "#10B981", "book"},
	{"Exercise", "Physical fitness and workouts", models.CategoryHealth, 45, "#3B82F6", "dumbbell"},
	{"Meditation", "Mindfulness and meditation practice", models.CategoryWellness, 20, "#8B5CF6", "brain"},
	{"Writing", "Blog posts, journaling, and creative writing", models.CategoryCreative, 30, "#F43F5E", "book"},
	{"Learning", "Online courses and skill development", models.CategoryLearning, 90, "#14B8A6", "book"},
}

// Habits creates the sample habits for the owner. Skips seeding when the
// owner already has habits.
func Habits(store storage.Provider, owner string) (int, error) {
	if owner == "" {
		return 0, storage.ErrNotAuthenticated
	}

	existing, err := store.ListHabits(owner, true)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := nowFunc().UTC()
	for _, s := range samples {
		habit := models.Habit{
			ID:            uuid.New().String(),
			Owner:         owner,
			Name:          s.name,
			Description:   s.description,
			Category:      s.category,
			TargetMinutes: s.targetMin,
			Status:        models.StatusActive,
			Color:         s.color,
			Icon:          s.icon,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := store.CreateHabit(habit); err != nil {
			return 0, fmt.Errorf("failed to seed habit %q: %w", s.name, err)
		}
	}

	return len(samples), nil
}

// Logs generates logs for the past week across the owner's habits. Each
// habit has a 70% chance of a log per day with a duration between 15 minutes
// and 2 hours. Skips seeding when logs already exist.
func Logs(store storage.Provider, owner string, loc *time.Location) (int, error) {
	if owner == "" {
		return 0, storage.ErrNotAuthenticated
	}

	habits, err := store.ListHabits(owner, true)
	if err != nil {
		return 0, err
	}
	if len(habits) == 0 {
		return 0, nil
	}

	existing, err := store.ListLogs(owner, "")
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := nowFunc().In(loc)
	count := 0
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(constants.DateFormat)
		for _, habit := range habits {
			if rand.Float64() <= 0.3 {
				continue
			}
			log := models.HabitLog{
				ID:              uuid.New().String(),
				HabitID:         habit.ID,
				Owner:           owner,
				Date:            date,
				DurationMinutes: rand.Intn(105) + 15,
				Notes:           fmt.Sprintf("Sample log for %s", habit.Name),
			}
			if _, err := store.UpsertLog(log); err != nil {
				return count, fmt.Errorf("failed to seed log: %w", err)
			}
			count++
		}
	}

	return count, nil
}

// All seeds habits then logs.
func All(store storage.Provider, owner string, loc *time.Location) (habits, logs int, err error) {
	habits, err = Habits(store, owner)
	if err != nil {
		return 0, 0, err
	}
	logs, err = Logs(store, owner, loc)
	return habits, logs, err
}
