package sqlite

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

	store := NewStore(filepath.Join(t.TempDir(), "habitual.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func addTestHabit(t *testing.T, store *Store, owner, name string) models.Habit {
	t.Helper()

	now := time.Now()
	habit := models.Habit{
		ID:            uuid.New().String(),
		Owner:         owner,
		Name:          name,
		Category:      models.CategoryOther,
		TargetMinutes: 60,
		Status:        models.StatusActive,
		Color:         "#3B82F6",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := store.CreateHabit(habit); err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	return habit
}

func TestHabitCRUD(t *testing.T) {
	store := newTestStore(t)
	habit := addTestHabit(t, store, "alice", "Reading")

	got, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Name != "Reading" || got.Owner != "alice" {
		t.Errorf("unexpected habit: %+v", got)
	}

	got.Status = models.StatusPaused
	if err := store.UpdateHabit(got); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}

	active, err := store.ListHabits("alice", false)
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("paused habit should not be listed as active, got %d", len(active))
	}

	all, err := store.ListHabits("alice", true)
	if err != nil {
		t.Fatalf("ListHabits(all) failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 habit total, got %d", len(all))
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if _, err := store.GetHabit(habit.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreateHabit_RequiresOwner(t *testing.T) {
	store := newTestStore(t)

	err := store.CreateHabit(models.Habit{ID: "x", Name: "No Owner"})
	if !errors.Is(err, storage.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestUpsertLog_MergesSameDay(t *testing.T) {
	store := newTestStore(t)
	habit := addTestHabit(t, store, "alice", "Coding")

	first := models.HabitLog{
		ID:              uuid.New().String(),
		HabitID:         habit.ID,
		Owner:           "alice",
		Date:            "2025-06-01",
		DurationMinutes: 30,
		Notes:           "morning",
	}
	if _, err := store.UpsertLog(first); err != nil {
		t.Fatalf("first UpsertLog failed: %v", err)
	}

	second := first
	second.ID = uuid.New().String()
	second.DurationMinutes = 20
	second.Notes = "evening"

	merged, err := store.UpsertLog(second)
	if err != nil {
		t.Fatalf("second UpsertLog failed: %v", err)
	}

	if merged.DurationMinutes != 50 {
		t.Errorf("merged duration = %d, want 50", merged.DurationMinutes)
	}
	if merged.Notes != "morning; evening" {
		t.Errorf("merged notes = %q, want %q", merged.Notes, "morning; evening")
	}
	if !merged.IsCompleted {
		t.Error("merged log should be completed")
	}

	logs, err := store.ListLogs("alice", "2025-06-01")
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected exactly one row after merge, got %d", len(logs))
	}
}

func TestUpsertLog_EmptyNotesSkipped(t *testing.T) {
	store := newTestStore(t)
	habit := addTestHabit(t, store, "alice", "Coding")

	first := models.HabitLog{
		ID: uuid.New().String(), HabitID: habit.ID, Owner: "alice",
		Date: "2025-06-01", DurationMinutes: 10, Notes: "note",
	}
	if _, err := store.UpsertLog(first); err != nil {
		t.Fatalf("UpsertLog failed: %v", err)
	}

	second := first
	second.ID = uuid.New().String()
	second.Notes = ""

	merged, err := store.UpsertLog(second)
	if err != nil {
		t.Fatalf("UpsertLog failed: %v", err)
	}
	if merged.Notes != "note" {
		t.Errorf("notes = %q, want %q (no trailing separator)", merged.Notes, "note")
	}
}

func TestUpsertLog_UnknownHabit(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpsertLog(models.HabitLog{
		ID: uuid.New().String(), HabitID: "missing", Owner: "alice",
		Date: "2025-06-01", DurationMinutes: 10,
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStartSession_EndsPriorActiveSession(t *testing.T) {
	store := newTestStore(t)
	habit := addTestHabit(t, store, "alice", "Coding")

	first, err := store.StartSession("alice", habit.ID, "")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	second, err := store.StartSession("alice", habit.ID, "")
	if err != nil {
		t.Fatalf("second StartSession failed: %v", err)
	}

	active, err := store.ListActiveSessions("alice")
	if err != nil {
		t.Fatalf("ListActiveSessions failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected exactly one active session, got %d", len(active))
	}
	if active[0].ID != second.ID {
		t.Errorf("active session = %s, want the newer %s", active[0].ID, second.ID)
	}

	// The implicitly ended session has an end time but no duration.
	all, err := store.ListAllSessions("alice")
	if err != nil {
		t.Fatalf("ListAllSessions failed: %v", err)
	}
	for _, sess := range all {
		if sess.ID != first.ID {
			continue
		}
		if sess.IsActive {
			t.Error("prior session still active")
		}
		if sess.EndTime == nil {
			t.Error("prior session has no end time")
		}
		if sess.DurationMinutes != nil {
			t.Error("implicitly ended session should keep a NULL duration")
		}
	}
}

func TestEndSession_RoundsToNearestMinute(t *testing.T) {
	store := newTestStore(t)
	habit := addTestHabit(t, store, "alice", "Coding")

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"2m30s rounds up to 3", 2*time.Minute + 30*time.Second, 3},
		{"90s rounds half up to 2", 90 * time.Second, 2},
		{"89s rounds down to 1", 89 * time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nowFunc = func() time.Time { return base }
			defer func() { nowFunc = time.Now }()

			sess, err := store.StartSession("alice", habit.ID, "")
			if err != nil {
				t.Fatalf("StartSession failed: %v", err)
			}

			nowFunc = func() time.Time { return base.Add(tt.elapsed) }

			ended, err := store.EndSession(sess.ID)
			if err != nil {
				t.Fatalf("EndSession failed: %v", err)
			}

			if ended.IsActive {
				t.Error("session still active after end")
			}
			if ended.DurationMinutes == nil {
				t.Fatal("ended session has no duration")
			}
			if *ended.DurationMinutes != tt.want {
				t.Errorf("duration = %d, want %d", *ended.DurationMinutes, tt.want)
			}
		})
	}
}

func TestEndSession_NotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.EndSession("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClearTodayLeavesOtherDays(t *testing.T) {
	store := newTestStore(t)
	habit := addTestHabit(t, store, "alice", "Coding")

	for _, date := range []string{"2025-06-01", "2025-06-02"} {
		_, err := store.UpsertLog(models.HabitLog{
			ID: uuid.New().String(), HabitID: habit.ID, Owner: "alice",
			Date: date, DurationMinutes: 30,
		})
		if err != nil {
			t.Fatalf("UpsertLog failed: %v", err)
		}
	}

	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	nowFunc = func() time.Time { return today.Add(9 * time.Hour) }
	if _, err := store.StartSession("alice", habit.ID, ""); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	nowFunc = func() time.Time { return today.Add(-15 * time.Hour) } // previous day
	if _, err := store.StartSession("alice", habit.ID, ""); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	nowFunc = time.Now

	if err := store.DeleteLogs("alice", "2025-06-02"); err != nil {
		t.Fatalf("DeleteLogs failed: %v", err)
	}
	if err := store.DeleteSessionsBetween("alice", today, tomorrow); err != nil {
		t.Fatalf("DeleteSessionsBetween failed: %v", err)
	}

	logs, err := store.ListLogs("alice", "")
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 1 || logs[0].Date != "2025-06-01" {
		t.Errorf("expected only the June 1 log to survive, got %+v", logs)
	}

	sessions, err := store.ListAllSessions("alice")
	if err != nil {
		t.Fatalf("ListAllSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected only the prior-day session to survive, got %d", len(sessions))
	}
	if !sessions[0].StartTime.Before(today) {
		t.Errorf("surviving session starts at %v, expected before %v", sessions[0].StartTime, today)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := models.Settings{
		Owner:            "alice",
		Timezone:         "America/New_York",
		DefaultTargetMin: 45,
		ReminderTime:     "21:30",
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}
