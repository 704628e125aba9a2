// Package jsonstore implements the storage Provider against a single JSON
// file. It exists for portability and debugging; sqlite is the default.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/timeutil"
)

var nowFunc = time.Now

type fileData struct {
	Version  int                            `json:"version"`
	Settings models.Settings                `json:"settings"`
	Habits   map[string]models.Habit        `json:"habits"`
	Logs     map[string]models.HabitLog     `json:"logs"`
	Sessions map[string]models.HabitSession `json:"sessions"`
}

type Store struct {
	path string
	mu   sync.Mutex
	data *fileData
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = &fileData{
		Version: 1,
		Settings: models.Settings{
			Timezone:         constants.DefaultTimezone,
			DefaultTargetMin: constants.DefaultTargetMin,
			ReminderTime:     constants.DefaultReminderTime,
		},
		Habits:   make(map[string]models.Habit),
		Logs:     make(map[string]models.HabitLog),
		Sessions: make(map[string]models.HabitSession),
	}

	return s.save()
}

func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data != nil {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitual init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = &fileData{}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.data.Habits == nil {
		s.data.Habits = make(map[string]models.Habit)
	}
	if s.data.Logs == nil {
		s.data.Logs = make(map[string]models.HabitLog)
	}
	if s.data.Sessions == nil {
		s.data.Sessions = make(map[string]models.HabitSession)
	}

	return nil
}

func (s *Store) Close() error {
	return nil
}

// save must be called with the mutex held.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *Store) loaded() error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *Store) GetSettings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.data.Settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Settings = settings
	return s.save()
}

func (s *Store) CreateHabit(habit models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return err
	}
	if habit.Owner == "" {
		return storage.ErrNotAuthenticated
	}

	s.data.Habits[habit.ID] = habit
	return s.save()
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}

	habit, ok := s.data.Habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
	}
	return habit, nil
}

func (s *Store) GetHabitByName(owner, name string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}

	for _, habit := range s.data.Habits {
		if habit.Owner == owner && habit.Name == name {
			return habit, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q: %w", name, storage.ErrNotFound)
}

func (s *Store) ListHabits(owner string, includeAll bool) ([]models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return nil, err
	}

	var habits []models.Habit
	for _, habit := range s.data.Habits {
		if habit.Owner != owner {
			continue
		}
		if !includeAll && habit.Status != models.StatusActive {
			continue
		}
		habits = append(habits, habit)
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.After(habits[j].CreatedAt)
	})
	return habits, nil
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return err
	}
	if habit.Owner == "" {
		return storage.ErrNotAuthenticated
	}

	if _, ok := s.data.Habits[habit.ID]; !ok {
		return fmt.Errorf("habit %s: %w", habit.ID, storage.ErrNotFound)
	}

	habit.UpdatedAt = nowFunc().UTC()
	s.data.Habits[habit.ID] = habit
	return s.save()
}

func (s *Store) DeleteHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.data.Habits[id]; !ok {
		return fmt.Errorf("habit %s: %w", id, storage.ErrNotFound)
	}

	delete(s.data.Habits, id)
	for key, log := range s.data.Logs {
		if log.HabitID == id {
			delete(s.data.Logs, key)
		}
	}
	for key, sess := range s.data.Sessions {
		if sess.HabitID == id {
			delete(s.data.Sessions, key)
		}
	}
	return s.save()
}

func logKey(habitID, owner, date string) string {
	return habitID + "|" + owner + "|" + date
}

func (s *Store) ListLogs(owner, date string) ([]models.HabitLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return nil, err
	}

	var logs []models.HabitLog
	for _, log := range s.data.Logs {
		if log.Owner != owner {
			continue
		}
		if date != "" && log.Date != date {
			continue
		}
		logs = append(logs, log)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LoggedAt.After(logs[j].LoggedAt)
	})
	return logs, nil
}

func (s *Store) ListLogsRange(owner, from, to string) ([]models.HabitLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return nil, err
	}

	var logs []models.HabitLog
	for _, log := range s.data.Logs {
		if log.Owner != owner || log.Date < from || log.Date > to {
			continue
		}
		logs = append(logs, log)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})
	return logs, nil
}

func (s *Store) UpsertLog(log models.HabitLog) (models.HabitLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return models.HabitLog{}, err
	}
	if log.Owner == "" {
		return models.HabitLog{}, storage.ErrNotAuthenticated
	}
	if _, ok := s.data.Habits[log.HabitID]; !ok {
		return models.HabitLog{}, fmt.Errorf("habit %s: %w", log.HabitID, storage.ErrNotFound)
	}

	if log.LoggedAt.IsZero() {
		log.LoggedAt = nowFunc().UTC()
	}

	key := logKey(log.HabitID, log.Owner, log.Date)
	if existing, ok := s.data.Logs[key]; ok {
		existing.DurationMinutes += log.DurationMinutes
		if log.Notes != "" {
			if existing.Notes == "" {
				existing.Notes = log.Notes
			} else {
				existing.Notes = existing.Notes + "; " + log.Notes
			}
		}
		existing.IsCompleted = existing.DurationMinutes > 0
		existing.LoggedAt = log.LoggedAt
		s.data.Logs[key] = existing
		if err := s.save(); err != nil {
			return models.HabitLog{}, err
		}
		return existing, nil
	}

	log.IsCompleted = log.DurationMinutes > 0
	s.data.Logs[key] = log
	if err := s.save(); err != nil {
		return models.HabitLog{}, err
	}
	return log, nil
}

func (s *Store) DeleteLogs(owner, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return err
	}
	if owner == "" {
		return storage.ErrNotAuthenticated
	}

	for key, log := range s.data.Logs {
		if log.Owner != owner {
			continue
		}
		if date != "" && log.Date != date {
			continue
		}
		delete(s.data.Logs, key)
	}
	return s.save()
}

func (s *Store) ListActiveSessions(owner string) ([]models.HabitSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return nil, err
	}

	var sessions []models.HabitSession
	for _, sess := range s.data.Sessions {
		if sess.Owner == owner && sess.IsActive {
			sessions = append(sessions, sess)
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions, nil
}

func (s *Store) ListSessionsBetween(owner string, start, end time.Time) ([]models.HabitSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return nil, err
	}

	var sessions []models.HabitSession
	for _, sess := range s.data.Sessions {
		if sess.Owner != owner {
			continue
		}
		if sess.StartTime.Before(start) || !sess.StartTime.Before(end) {
			continue
		}
		sessions = append(sessions, sess)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions, nil
}

func (s *Store) ListAllSessions(owner string) ([]models.HabitSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return nil, err
	}

	var sessions []models.HabitSession
	for _, sess := range s.data.Sessions {
		if sess.Owner == owner {
			sessions = append(sessions, sess)
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions, nil
}

func (s *Store) StartSession(owner, habitID, notes string) (models.HabitSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return models.HabitSession{}, err
	}
	if owner == "" {
		return models.HabitSession{}, storage.ErrNotAuthenticated
	}
	if _, ok := s.data.Habits[habitID]; !ok {
		return models.HabitSession{}, fmt.Errorf("habit %s: %w", habitID, storage.ErrNotFound)
	}

	now := nowFunc().UTC()

	// Implicitly end any active session for the habit. The end time is
	// stamped but no duration is computed for an implicit end.
	for id, sess := range s.data.Sessions {
		if sess.HabitID == habitID && sess.Owner == owner && sess.IsActive {
			sess.IsActive = false
			end := now
			sess.EndTime = &end
			s.data.Sessions[id] = sess
		}
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
	s.data.Sessions[sess.ID] = sess

	if err := s.save(); err != nil {
		return models.HabitSession{}, err
	}
	return sess, nil
}

func (s *Store) EndSession(id string) (models.HabitSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return models.HabitSession{}, err
	}

	sess, ok := s.data.Sessions[id]
	if !ok {
		return models.HabitSession{}, fmt.Errorf("session %s: %w", id, storage.ErrNotFound)
	}

	end := nowFunc().UTC()
	duration := timeutil.SessionMinutes(sess.StartTime, end)

	sess.IsActive = false
	sess.EndTime = &end
	sess.DurationMinutes = &duration
	s.data.Sessions[id] = sess

	if err := s.save(); err != nil {
		return models.HabitSession{}, err
	}
	return sess, nil
}

func (s *Store) DeleteSessionsBetween(owner string, start, end time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return err
	}
	if owner == "" {
		return storage.ErrNotAuthenticated
	}

	for id, sess := range s.data.Sessions {
		if sess.Owner != owner {
			continue
		}
		if sess.StartTime.Before(start) || !sess.StartTime.Before(end) {
			continue
		}
		delete(s.data.Sessions, id)
	}
	return s.save()
}

func (s *Store) DeleteSessions(owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loaded(); err != nil {
		return err
	}
	if owner == "" {
		return storage.ErrNotAuthenticated
	}

	for id, sess := range s.data.Sessions {
		if sess.Owner == owner {
			delete(s.data.Sessions, id)
		}
	}
	return s.save()
}

func (s *Store) GetConfigPath() string {
	return s.path
}
