package tracker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

func TestTickerEmitsElapsed(t *testing.T) {
	tk := NewWithInterval(5 * time.Millisecond)

	var ticks atomic.Int64
	tk.Start(models.HabitSession{
		ID:        "s1",
		StartTime: time.Now().UTC(),
		IsActive:  true,
	}, func(elapsed time.Duration) {
		ticks.Add(1)
	})

	time.Sleep(50 * time.Millisecond)
	tk.Stop()

	if ticks.Load() == 0 {
		t.Error("expected at least one tick")
	}
	if tk.Running() {
		t.Error("ticker should not be running after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	tk := NewWithInterval(5 * time.Millisecond)
	tk.Start(models.HabitSession{ID: "s1", StartTime: time.Now()}, func(time.Duration) {})

	tk.Stop()
	tk.Stop()
	tk.Stop()

	if tk.Running() {
		t.Error("ticker should not be running")
	}
}

func TestStopWithoutStart(t *testing.T) {
	tk := New()
	tk.Stop()

	if tk.Running() {
		t.Error("ticker should not be running")
	}
}

func TestNoTicksAfterStop(t *testing.T) {
	tk := NewWithInterval(5 * time.Millisecond)

	var ticks atomic.Int64
	tk.Start(models.HabitSession{ID: "s1", StartTime: time.Now()}, func(time.Duration) {
		ticks.Add(1)
	})

	time.Sleep(25 * time.Millisecond)
	tk.Stop()
	time.Sleep(10 * time.Millisecond)
	settled := ticks.Load()

	time.Sleep(25 * time.Millisecond)
	if got := ticks.Load(); got != settled {
		t.Errorf("ticks advanced after Stop: %d -> %d", settled, got)
	}
}

func TestElapsed(t *testing.T) {
	tk := New()

	if tk.Elapsed() != 0 {
		t.Error("idle ticker should report zero elapsed")
	}

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return start.Add(90 * time.Second) }
	defer func() { nowFunc = time.Now }()

	tk.Start(models.HabitSession{ID: "s1", StartTime: start}, func(time.Duration) {})
	defer tk.Stop()

	if got := tk.Elapsed(); got != 90*time.Second {
		t.Errorf("Elapsed() = %v, want 90s", got)
	}

	sess, ok := tk.Session()
	if !ok || sess.ID != "s1" {
		t.Errorf("Session() = %v, %v", sess, ok)
	}
}
