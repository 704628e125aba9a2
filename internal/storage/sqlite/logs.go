package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

const logColumns = "id, habit_id, owner, date, duration_minutes, notes, is_completed, logged_at"

func scanLog(row interface{ Scan(...any) error }) (models.HabitLog, error) {
	var l models.HabitLog
	var loggedAt string

	err := row.Scan(&l.ID, &l.HabitID, &l.Owner, &l.Date, &l.DurationMinutes, &l.Notes, &l.IsCompleted, &loggedAt)
	if err != nil {
		return models.HabitLog{}, err
	}

	if l.LoggedAt, err = time.Parse(time.RFC3339, loggedAt); err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse logged_at: %w", err)
	}

	return l, nil
}

func (s *Store) ListLogs(owner, date string) ([]models.HabitLog, error) {
	query := "SELECT " + logColumns + " FROM habit_logs WHERE owner = ?"
	args := []any{owner}
	if date != "" {
		query += " AND date = ?"
		args = append(args, date)
	}
	query += " ORDER BY logged_at DESC"

	return s.queryLogs(query, args...)
}

func (s *Store) ListLogsRange(owner, from, to string) ([]models.HabitLog, error) {
	return s.queryLogs(
		"SELECT "+logColumns+" FROM habit_logs WHERE owner = ? AND date >= ? AND date <= ? ORDER BY date",
		owner, from, to,
	)
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

// UpsertLog records time against a habit for a day. The merge happens inside
// a single statement keyed on (habit_id, owner, date): durations sum, notes
// join with "; " (empty sides skipped), the completion flag follows the new
// total, and logged_at refreshes. Exactly one row per key exists afterwards
// no matter how many times this runs in a day.
func (s *Store) UpsertLog(log models.HabitLog) (models.HabitLog, error) {
	if log.Owner == "" {
		return models.HabitLog{}, storage.ErrNotAuthenticated
	}

	if _, err := s.GetHabit(log.HabitID); err != nil {
		return models.HabitLog{}, err
	}

	loggedAt := log.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = nowFunc()
	}

	_, err := s.db.Exec(`
		INSERT INTO habit_logs (id, habit_id, owner, date, duration_minutes, notes, is_completed, logged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (habit_id, owner, date) DO UPDATE SET
			duration_minutes = habit_logs.duration_minutes + excluded.duration_minutes,
			notes = CASE
				WHEN excluded.notes = '' THEN habit_logs.notes
				WHEN habit_logs.notes = '' THEN excluded.notes
				ELSE habit_logs.notes || '; ' || excluded.notes
			END,
			is_completed = habit_logs.duration_minutes + excluded.duration_minutes > 0,
			logged_at = excluded.logged_at`,
		log.ID, log.HabitID, log.Owner, log.Date, log.DurationMinutes, log.Notes,
		log.DurationMinutes > 0, loggedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to upsert log: %w", err)
	}

	row := s.db.QueryRow(
		"SELECT "+logColumns+" FROM habit_logs WHERE habit_id = ? AND owner = ? AND date = ?",
		log.HabitID, log.Owner, log.Date,
	)
	merged, err := scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitLog{}, fmt.Errorf("log for habit %s on %s: %w", log.HabitID, log.Date, storage.ErrNotFound)
	}
	return merged, err
}

func (s *Store) DeleteLogs(owner, date string) error {
	if owner == "" {
		return storage.ErrNotAuthenticated
	}

	query := "DELETE FROM habit_logs WHERE owner = ?"
	args := []any{owner}
	if date != "" {
		query += " AND date = ?"
		args = append(args, date)
	}

	_, err := s.db.Exec(query, args...)
	return err
}
