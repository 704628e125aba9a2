package reminder

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
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

func TestRemindPrintsSummary(t *testing.T) {
	s := newTestStore(t)

	now := time.Now().UTC()
	habit := models.Habit{
		ID:            uuid.New().String(),
		Owner:         "alice",
		Name:          "Reading",
		Category:      models.CategoryLearning,
		TargetMinutes: 30,
		Status:        models.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.CreateHabit(habit); err != nil {
		t.Fatalf("CreateHabit() error = %v", err)
	}

	today := time.Now().UTC().Format(constants.DateFormat)
	if _, err := s.UpsertLog(models.HabitLog{
		ID:              uuid.New().String(),
		HabitID:         habit.ID,
		Owner:           "alice",
		Date:            today,
		DurationMinutes: 45,
	}); err != nil {
		t.Fatalf("UpsertLog() error = %v", err)
	}

	var buf bytes.Buffer
	d := New(s, "alice", time.UTC, &buf)
	d.Remind()

	out := buf.String()
	if !strings.Contains(out, "1/1 habits completed") {
		t.Errorf("output missing completion line: %q", out)
	}
	if !strings.Contains(out, "45m tracked today") {
		t.Errorf("output missing tracked time: %q", out)
	}
}

func TestStartRejectsInvalidTime(t *testing.T) {
	s := newTestStore(t)

	d := New(s, "alice", time.UTC, &bytes.Buffer{})
	if err := d.Start("8pm"); err == nil {
		t.Error("Start() should reject a non HH:MM time")
	}
}

func TestStartAndStop(t *testing.T) {
	s := newTestStore(t)

	d := New(s, "alice", time.UTC, &bytes.Buffer{})
	if err := d.Start("20:00"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	d.Stop()
}
