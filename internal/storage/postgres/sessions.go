package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/timeutil"
)

const sessionColumns = "id, habit_id, owner, start_time, end_time, duration_minutes, is_active, notes, created_at"

func scanSession(row interface{ Scan(...any) error }) (models.HabitSession, error) {
	var sess models.HabitSession
	var endTime sql.NullTime
	var duration sql.NullInt64

	err := row.Scan(&sess.ID, &sess.HabitID, &sess.Owner, &sess.StartTime, &endTime, &duration, &sess.IsActive, &sess.Notes, &sess.CreatedAt)
	if err != nil {
		return models.HabitSession{}, err
	}

	if endTime.Valid {
		t := endTime.Time
		sess.EndTime = &t
	}
	if duration.Valid {
		d := int(duration.Int64)
		sess.DurationMinutes = &d
	}

	return sess, nil
}

func (s *Store) querySessions(query string, args ...any) ([]models.HabitSession, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.HabitSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

func (s *Store) ListActiveSessions(owner string) ([]models.HabitSession, error) {
	return s.querySessions(
		"SELECT "+sessionColumns+" FROM habit_sessions WHERE owner = $1 AND is_active",
		owner,
	)
}

func (s *Store) ListSessionsBetween(owner string, start, end time.Time) ([]models.HabitSession, error) {
	return s.querySessions(
		"SELECT "+sessionColumns+" FROM habit_sessions WHERE owner = $1 AND start_time >= $2 AND start_time < $3 ORDER BY start_time",
		owner, start, end,
	)
}

func (s *Store) ListAllSessions(owner string) ([]models.HabitSession, error) {
	return s.querySessions(
		"SELECT "+sessionColumns+" FROM habit_sessions WHERE owner = $1 ORDER BY start_time",
		owner,
	)
}

func (s *Store) StartSession(owner, habitID, notes string) (models.HabitSession, error) {
	if owner == "" {
		return models.HabitSession{}, storage.ErrNotAuthenticated
	}

	if _, err := s.GetHabit(habitID); err != nil {
		return models.HabitSession{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.HabitSession{}, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	_, err = tx.Exec(
		"UPDATE habit_sessions SET is_active = FALSE, end_time = $1 WHERE habit_id = $2 AND owner = $3 AND is_active",
		now, habitID, owner,
	)
	if err != nil {
		return models.HabitSession{}, fmt.Errorf("failed to end prior session: %w", err)
	}

	sess := models.HabitSession{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Owner:     owner,
		StartTime: now,
		IsActive:  true,
		Notes:     notes,
		CreatedAt: now,
	}

	_, err = tx.Exec(`
		INSERT INTO habit_sessions (id, habit_id, owner, start_time, end_time, duration_minutes, is_active, notes, created_at)
		VALUES ($1, $2, $3, $4, NULL, NULL, TRUE, $5, $6)`,
		sess.ID, sess.HabitID, sess.Owner, now, sess.Notes, now,
	)
	if err != nil {
		return models.HabitSession{}, fmt.Errorf("failed to create session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.HabitSession{}, err
	}

	return sess, nil
}

func (s *Store) EndSession(id string) (models.HabitSession, error) {
	row := s.db.QueryRow("SELECT "+sessionColumns+" FROM habit_sessions WHERE id = $1", id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitSession{}, fmt.Errorf("session %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.HabitSession{}, err
	}

	end := time.Now().UTC()
	duration := timeutil.SessionMinutes(sess.StartTime, end)

	_, err = s.db.Exec(
		"UPDATE habit_sessions SET is_active = FALSE, end_time = $1, duration_minutes = $2 WHERE id = $3",
		end, duration, id,
	)
	if err != nil {
		return models.HabitSession{}, fmt.Errorf("failed to end session: %w", err)
	}

	sess.IsActive = false
	sess.EndTime = &end
	sess.DurationMinutes = &duration

	return sess, nil
}

func (s *Store) DeleteSessionsBetween(owner string, start, end time.Time) error {
	if owner == "" {
		return storage.ErrNotAuthenticated
	}

	_, err := s.db.Exec(
		"DELETE FROM habit_sessions WHERE owner = $1 AND start_time >= $2 AND start_time < $3",
		owner, start, end,
	)
	return err
}

func (s *Store) DeleteSessions(owner string) error {
	if owner == "" {
		return storage.ErrNotAuthenticated
	}

	_, err := s.db.Exec("DELETE FROM habit_sessions WHERE owner = $1", owner)
	return err
}
