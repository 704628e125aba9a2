package jsonstore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := New(filepath.Join(t.TempDir(), "habitual.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return s
}

func addTestHabit(t *testing.T, s *Store, owner, name string) models.Habit {
	t.Helper()

	now := time.Now().UTC()
	habit := models.Habit{
		ID:            uuid.New().String(),
		Owner:         owner,
		Name:          name,
		Category:      models.CategoryLearning,
		TargetMinutes: 30,
		Status:        models.StatusActive,
		Color:         "#10b981",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.CreateHabit(habit); err != nil {
		t.Fatalf("CreateHabit() error = %v", err)
	}
	return habit
}

func TestInitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitual.json")

	s := New(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := New(path).Init(); err == nil {
		t.Error("second Init() should fail on an existing file")
	}
}

func TestReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitual.json")

	s := New(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	habit := addTestHabit(t, s, "alice", "Reading")

	reloaded := New(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got, err := reloaded.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit() error = %v", err)
	}
	if got.Name != "Reading" {
		t.Errorf("Name = %q, want %q", got.Name, "Reading")
	}
}

func TestUpsertLogMergesSameDay(t *testing.T) {
	s := newTestStore(t)
	habit := addTestHabit(t, s, "alice", "Reading")

	first := models.HabitLog{
		ID:              uuid.New().String(),
		HabitID:         habit.ID,
		Owner:           "alice",
		Date:            "2025-06-01",
		DurationMinutes: 30,
		Notes:           "morning",
	}
	if _, err := s.UpsertLog(first); err != nil {
		t.Fatalf("UpsertLog() error = %v", err)
	}

	second := first
	second.ID = uuid.New().String()
	second.DurationMinutes = 20
	second.Notes = "evening"

	merged, err := s.UpsertLog(second)
	if err != nil {
		t.Fatalf("UpsertLog() error = %v", err)
	}

	if merged.DurationMinutes != 50 {
		t.Errorf("DurationMinutes = %d, want 50", merged.DurationMinutes)
	}
	if merged.Notes != "morning; evening" {
		t.Errorf("Notes = %q, want %q", merged.Notes, "morning; evening")
	}
	if !merged.IsCompleted {
		t.Error("merged log should be completed")
	}

	logs, err := s.ListLogs("alice", "2025-06-01")
	if err != nil {
		t.Fatalf("ListLogs() error = %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
}

func TestUpsertLogUnknownHabit(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpsertLog(models.HabitLog{
		ID:      uuid.New().String(),
		HabitID: "missing",
		Owner:   "alice",
		Date:    "2025-06-01",
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestStartSessionEndsPriorActive(t *testing.T) {
	s := newTestStore(t)
	habit := addTestHabit(t, s, "alice", "Reading")

	first, err := s.StartSession("alice", habit.ID, "")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if _, err := s.StartSession("alice", habit.ID, ""); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	active, err := s.ListActiveSessions("alice")
	if err != nil {
		t.Fatalf("ListActiveSessions() error = %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("got %d active sessions, want 1", len(active))
	}

	all, err := s.ListAllSessions("alice")
	if err != nil {
		t.Fatalf("ListAllSessions() error = %v", err)
	}
	for _, sess := range all {
		if sess.ID != first.ID {
			continue
		}
		if sess.EndTime == nil {
			t.Error("implicitly ended session should have an end time")
		}
		if sess.DurationMinutes != nil {
			t.Error("implicitly ended session should not have a duration")
		}
	}
}

func TestEndSessionRoundsToNearestMinute(t *testing.T) {
	s := newTestStore(t)
	habit := addTestHabit(t, s, "alice", "Reading")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return start }
	defer func() { nowFunc = time.Now }()

	sess, err := s.StartSession("alice", habit.ID, "")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	nowFunc = func() time.Time { return start.Add(90 * time.Second) }

	ended, err := s.EndSession(sess.ID)
	if err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	if ended.DurationMinutes == nil || *ended.DurationMinutes != 2 {
		t.Errorf("DurationMinutes = %v, want 2", ended.DurationMinutes)
	}
	if ended.IsActive {
		t.Error("ended session should not be active")
	}
}

func TestRequireOwner(t *testing.T) {
	s := newTestStore(t)

	if err := s.CreateHabit(models.Habit{ID: "h1"}); !errors.Is(err, storage.ErrNotAuthenticated) {
		t.Errorf("CreateHabit error = %v, want ErrNotAuthenticated", err)
	}
	if _, err := s.StartSession("", "h1", ""); !errors.Is(err, storage.ErrNotAuthenticated) {
		t.Errorf("StartSession error = %v, want ErrNotAuthenticated", err)
	}
	if err := s.DeleteLogs("", ""); !errors.Is(err, storage.ErrNotAuthenticated) {
		t.Errorf("DeleteLogs error = %v, want ErrNotAuthenticated", err)
	}
}
