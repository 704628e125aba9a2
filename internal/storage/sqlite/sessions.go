package sqlite

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
	var startTime, createdAt string
	var endTime sql.NullString
	var duration sql.NullInt64

	err := row.Scan(&sess.ID, &sess.HabitID, &sess.Owner, &startTime, &endTime, &duration, &sess.IsActive, &sess.Notes, &createdAt)
	if err != nil {
		return models.HabitSession{}, err
	}

	if sess.StartTime, err = time.Parse(time.RFC3339, startTime); err != nil {
		return models.HabitSession{}, fmt.Errorf("failed to parse start_time: %w", err)
	}
	if sess.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.HabitSession{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if endTime.Valid {
		t, err := time.Parse(time.RFC3339, endTime.String)
		if err != nil {
			return models.HabitSession{}, fmt.Errorf("failed to parse end_time: %w", err)
		}
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
		"SELECT "+sessionColumns+" FROM habit_sessions WHERE owner = ? AND is_active = 1",
		owner,
	)
}

// ListSessionsBetween returns sessions whose start time falls inside
// [start, end). Timestamps are stored as UTC RFC3339 so lexical comparison
// matches chronological order.
func (s *Store) ListSessionsBetween(owner string, start, end time.Time) ([]models.HabitSession, error) {
	return s.querySessions(
		"SELECT "+sessionColumns+" FROM habit_sessions WHERE owner = ? AND start_time >= ? AND start_time < ? ORDER BY start_time",
		owner, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339),
	)
}

func (s *Store) ListAllSessions(owner string) ([]models.HabitSession, error) {
	return s.querySessions(
		"SELECT "+sessionColumns+" FROM habit_sessions WHERE owner = ? ORDER BY start_time",
		owner,
	)
}

// StartSession creates a new active session for the habit, ending any prior
// active session for that habit inside the same transaction. The implicitly
// ended session keeps a NULL duration; only an explicit stop records one.
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

	now := nowFunc().UTC()

	_, err = tx.Exec(
		"UPDATE habit_sessions SET is_active = 0, end_time = ? WHERE habit_id = ? AND owner = ? AND is_active = 1",
		now.Format(time.RFC3339), habitID, owner,
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
		VALUES (?, ?, ?, ?, NULL, NULL, 1, ?, ?)`,
		sess.ID, sess.HabitID, sess.Owner, now.Format(time.RFC3339), sess.Notes, now.Format(time.RFC3339),
	)
	if err != nil {
		return models.HabitSession{}, fmt.Errorf("failed to create session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.HabitSession{}, err
	}

	return sess, nil
}

// EndSession stamps the end time, computes the duration in whole minutes
// (rounded half up), and marks the session inactive. It never creates a
// habit log; tracked time becomes a completion record only when the caller
// logs it explicitly.
func (s *Store) EndSession(id string) (models.HabitSession, error) {
	row := s.db.QueryRow("SELECT "+sessionColumns+" FROM habit_sessions WHERE id = ?", id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitSession{}, fmt.Errorf("session %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.HabitSession{}, err
	}

	end := nowFunc().UTC()
	duration := timeutil.SessionMinutes(sess.StartTime, end)

	_, err = s.db.Exec(
		"UPDATE habit_sessions SET is_active = 0, end_time = ?, duration_minutes = ? WHERE id = ?",
		end.Format(time.RFC3339), duration, id,
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
		"DELETE FROM habit_sessions WHERE owner = ? AND start_time >= ? AND start_time < ?",
		owner, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) DeleteSessions(owner string) error {
	if owner == "" {
		return storage.ErrNotAuthenticated
	}

	_, err := s.db.Exec("DELETE FROM habit_sessions WHERE owner = ?", owner)
	return err
}
