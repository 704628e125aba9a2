package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

const logColumns = "id, habit_id, owner, date, duration_minutes, notes, is_completed, logged_at"

func scanLog(row interface{ Scan(...any) error }) (models.HabitLog, error) {
	var l models.HabitLog
	err := row.Scan(&l.ID, &l.HabitID, &l.Owner, &l.Date, &l.DurationMinutes, &l.Notes, &l.IsCompleted, &l.LoggedAt)
	if err != nil {
		return models.HabitLog{}, err
	}
	return l, nil
}

func (s *Store) queryLogs(query string, args ...any) ([]models.HabitLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (s *Store) ListLogs(owner, date string) ([]models.HabitLog, error) {
	if date != "" {
		return s.queryLogs(
			"SELECT "+logColumns+" FROM habit_logs WHERE owner = $1 AND date = $2 ORDER BY logged_at DESC",
			owner, date,
		)
	}
	return s.queryLogs(
		"SELECT "+logColumns+" FROM habit_logs WHERE owner = $1 ORDER BY logged_at DESC",
		owner,
	)
}

func (s *Store) ListLogsRange(owner, from, to string) ([]models.HabitLog, error) {
	return s.queryLogs(
		"SELECT "+logColumns+" FROM habit_logs WHERE owner = $1 AND date >= $2 AND date <= $3 ORDER BY date",
		owner, from, to,
	)
}

// UpsertLog merges on (habit_id, owner, date) in a single statement; see the
// sqlite implementation for the merge rules.
func (s *Store) UpsertLog(log models.HabitLog) (models.HabitLog, error) {
	if log.Owner == "" {
		return models.HabitLog{}, storage.ErrNotAuthenticated
	}

	if _, err := s.GetHabit(log.HabitID); err != nil {
		return models.HabitLog{}, err
	}

	loggedAt := log.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now().UTC()
	}

	row := s.db.QueryRow(`
		INSERT INTO habit_logs (id, habit_id, owner, date, duration_minutes, notes, is_completed, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (habit_id, owner, date) DO UPDATE SET
			duration_minutes = habit_logs.duration_minutes + excluded.duration_minutes,
			notes = CASE
				WHEN excluded.notes = '' THEN habit_logs.notes
				WHEN habit_logs.notes = '' THEN excluded.notes
				ELSE habit_logs.notes || '; ' || excluded.notes
			END,
			is_completed = habit_logs.duration_minutes + excluded.duration_minutes > 0,
			logged_at = excluded.logged_at
		RETURNING `+logColumns,
		log.ID, log.HabitID, log.Owner, log.Date, log.DurationMinutes, log.Notes,
		log.DurationMinutes > 0, loggedAt,
	)

	merged, err := scanLog(row)
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to upsert log: %w", err)
	}
	return merged, nil
}

func (s *Store) DeleteLogs(owner, date string) error {
	if owner == "" {
		return storage.ErrNotAuthenticated
	}

	var err error
	if date != "" {
		_, err = s.db.Exec("DELETE FROM habit_logs WHERE owner = $1 AND date = $2", owner, date)
	} else {
		_, err = s.db.Exec("DELETE FROM habit_logs WHERE owner = $1", owner)
	}
	return err
}
