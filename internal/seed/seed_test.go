package seed

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/storage/jsonstore"
)

func newTestStore(t *testing.T) *jsonstore.Store {
	t.Helper()

	s := jsonstore.New(filepath.Join(t.TempDir(), "habitual.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return s
}

func TestSeedHabits(t *testing.T) {
	s := newTestStore(t)

	n, err := Habits(s, "alice")
	if err != nil {
		t.Fatalf("Habits() error = %v", err)
	}
	if n != 6 {
		t.Errorf("seeded %d habits, want 6", n)
	}

	habits, err := s.ListHabits("alice", true)
	if err != nil {
		t.Fatalf("ListHabits() error = %v", err)
	}
	if len(habits) != 6 {
		t.Errorf("got %d habits, want 6", len(habits))
	}
}

func TestSeedHabitsSkipsWhenPresent(t *testing.T) {
	s := newTestStore(t)

	if _, err := Habits(s, "alice"); err != nil {
		t.Fatalf("Habits() error = %v", err)
	}

	n, err := Habits(s, "alice")
	if err != nil {
		t.Fatalf("Habits() error = %v", err)
	}
	if n != 0 {
		t.Errorf("second seed created %d habits, want 0", n)
	}
}

func TestSeedLogs(t *testing.T) {
	s := newTestStore(t)

	if _, err := Habits(s, "alice"); err != nil {
		t.Fatalf("Habits() error = %v", err)
	}

	n, err := Logs(s, "alice", time.UTC)
	if err != nil {
		t.Fatalf("Logs() error = %v", err)
	}

	logs, err := s.ListLogs("alice", "")
	if err != nil {
		t.Fatalf("ListLogs() error = %v", err)
	}
	if len(logs) != n {
		t.Errorf("store has %d logs, seeder reported %d", len(logs), n)
	}

	for _, log := range logs {
		if log.DurationMinutes < 15 || log.DurationMinutes > 119 {
			t.Errorf("seeded duration %d outside [15, 119]", log.DurationMinutes)
		}
		if !log.IsCompleted {
			t.Error("seeded log should be completed")
		}
	}
}

func TestSeedLogsWithoutHabits(t *testing.T) {
	s := newTestStore(t)

	n, err := Logs(s, "alice", time.UTC)
	if err != nil {
		t.Fatalf("Logs() error = %v", err)
	}
	if n != 0 {
		t.Errorf("seeded %d logs with no habits, want 0", n)
	}
}
