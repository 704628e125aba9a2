package sqlite

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/habitual/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "owner":
			settings.Owner = value
		case "timezone":
			settings.Timezone = value
		case "default_target_min":
			if settings.DefaultTargetMin, err = strconv.Atoi(value); err != nil {
				return models.Settings{}, fmt.Errorf("parsing default_target_min: %w", err)
			}
		case "reminder_time":
			settings.ReminderTime = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := map[string]string{
		"owner":              settings.Owner,
		"timezone":           settings.Timezone,
		"default_target_min": strconv.Itoa(settings.DefaultTargetMin),
		"reminder_time":      settings.ReminderTime,
	}
	for key, value := range pairs {
		if _, err := stmt.Exec(key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
