package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

const habitColumns = "id, owner, name, description, category, target_minutes, status, color, icon, created_at, updated_at"

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	var category, status string

	err := row.Scan(&h.ID, &h.Owner, &h.Name, &h.Description, &category, &h.TargetMinutes, &status, &h.Color, &h.Icon, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Category = models.Category(category)
	h.Status = models.Status(status)
	return h, nil
}

func (s *Store) CreateHabit(habit models.Habit) error {
	if habit.Owner == "" {
		return storage.ErrNotAuthenticated
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, owner, name, description, category, target_minutes, status, color, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		habit.ID, habit.Owner, habit.Name, habit.Description, string(habit.Category), habit.TargetMinutes,
		string(habit.Status), habit.Color, habit.Icon, habit.CreatedAt, habit.UpdatedAt,
	)
	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE id = $1", id)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
	}
	return h, err
}

func (s *Store) GetHabitByName(owner, name string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE owner = $1 AND name = $2", owner, name)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %q: %w", name, storage.ErrNotFound)
	}
	return h, err
}

func (s *Store) ListHabits(owner string, includeAll bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits WHERE owner = $1"
	if !includeAll {
		query += " AND status = 'active'"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	if habit.Owner == "" {
		return storage.ErrNotAuthenticated
	}

	res, err := s.db.Exec(`
		UPDATE habits SET name = $1, description = $2, category = $3, target_minutes = $4, status = $5, color = $6, icon = $7, updated_at = $8
		WHERE id = $9`,
		habit.Name, habit.Description, string(habit.Category), habit.TargetMinutes,
		string(habit.Status), habit.Color, habit.Icon, time.Now().UTC(), habit.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit %s: %w", habit.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteHabit(id string) error {
	res, err := s.db.Exec("DELETE FROM habits WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
