package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

func intPtr(v int) *int { return &v }

func TestProgress(t *testing.T) {
	tests := []struct {
		name   string
		spent  int
		target int
		want   int
	}{
		{"zero spent", 0, 100, 0},
		{"half", 50, 100, 50},
		{"exact", 100, 100, 100},
		{"uncapped above target", 150, 100, 150},
		{"rounds down", 333, 1000, 33},
		{"rounds half up", 25, 1000, 3},
		{"zero target", 50, 0, 0},
		{"negative target", 50, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.spent, tt.target); got != tt.want {
				t.Errorf("Progress(%d, %d) = %d, want %d", tt.spent, tt.target, got, tt.want)
			}
		})
	}
}

func TestClampFraction(t *testing.T) {
	if got := ClampFraction(150, 100); got != 1.0 {
		t.Errorf("expected bar fill clamped to 1.0, got %v", got)
	}
	if got := ClampFraction(50, 100); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
	if got := ClampFraction(50, 0); got != 0 {
		t.Errorf("expected 0 for no target, got %v", got)
	}
}

func TestComputeDaily(t *testing.T) {
	logs := []models.HabitLog{
		{HabitID: "habitA", Date: "2025-06-01", DurationMinutes: 30, IsCompleted: true},
		{HabitID: "habitB", Date: "2025-06-01", DurationMinutes: 0, IsCompleted: false},
	}
	sessions := []models.HabitSession{
		{HabitID: "habitA", DurationMinutes: intPtr(15)},
	}
	habits := []models.Habit{
		{ID: "habitA", Status: models.StatusActive},
		{ID: "habitB", Status: models.StatusActive},
	}

	got := ComputeDaily("2025-06-01", logs, sessions, habits)

	if got.TotalTime != 45 {
		t.Errorf("TotalTime = %d, want 45", got.TotalTime)
	}
	if got.CompletedHabits != 1 {
		t.Errorf("CompletedHabits = %d, want 1", got.CompletedHabits)
	}
	if got.TotalHabits != 2 {
		t.Errorf("TotalHabits = %d, want 2", got.TotalHabits)
	}
	if got.Progress != 50 {
		t.Errorf("Progress = %d, want 50", got.Progress)
	}
	if got.HabitTimeSpent["habitA"] != 45 {
		t.Errorf("HabitTimeSpent[habitA] = %d, want 45", got.HabitTimeSpent["habitA"])
	}
	if got.HabitTimeSpent["habitB"] != 0 {
		t.Errorf("HabitTimeSpent[habitB] = %d, want 0", got.HabitTimeSpent["habitB"])
	}
}

func TestComputeDaily_NilSessionDurationCountsZero(t *testing.T) {
	sessions := []models.HabitSession{
		{HabitID: "habitA", DurationMinutes: nil, IsActive: true},
		{HabitID: "habitA", DurationMinutes: intPtr(20)},
	}

	got := ComputeDaily("2025-06-01", nil, sessions, nil)

	if got.TotalTime != 20 {
		t.Errorf("TotalTime = %d, want 20", got.TotalTime)
	}
	if got.Progress != 0 {
		t.Errorf("Progress = %d, want 0 with no active habits", got.Progress)
	}
}

func TestComputeDaily_SessionsNeverComplete(t *testing.T) {
	sessions := []models.HabitSession{
		{HabitID: "habitA", DurationMinutes: intPtr(60)},
	}
	habits := []models.Habit{{ID: "habitA", Status: models.StatusActive}}

	got := ComputeDaily("2025-06-01", nil, sessions, habits)

	if got.CompletedHabits != 0 {
		t.Errorf("sessions must not count as completions, got %d", got.CompletedHabits)
	}
}

func TestStreaks_ConsecutiveDaysEndingToday(t *testing.T) {
	habits := []models.Habit{{ID: "h1"}}
	activity := map[string]map[string]bool{
		"h1": {
			"2025-06-01": true,
			"2025-05-31": true,
			"2025-05-30": true,
			"2025-05-28": true, // gap on the 29th
		},
	}

	streaks := Streaks(habits, activity, "2025-06-01")
	if streaks["h1"] != 3 {
		t.Errorf("streak = %d, want 3", streaks["h1"])
	}
}

func TestStreaks_AnchorsOnMostRecentActiveDay(t *testing.T) {
	habits := []models.Habit{{ID: "h1"}}
	activity := map[string]map[string]bool{
		"h1": {
			"2025-05-30": true,
			"2025-05-29": true,
		},
	}

	// No activity today or yesterday; streak counts back from May 30.
	streaks := Streaks(habits, activity, "2025-06-01")
	if streaks["h1"] != 2 {
		t.Errorf("streak = %d, want 2", streaks["h1"])
	}
}

func TestStreaks_NoActivity(t *testing.T) {
	habits := []models.Habit{{ID: "h1"}}

	streaks := Streaks(habits, map[string]map[string]bool{}, "2025-06-01")
	if streaks["h1"] != 0 {
		t.Errorf("streak = %d, want 0", streaks["h1"])
	}
}

func TestActivityDates(t *testing.T) {
	loc := time.UTC
	logs := []models.HabitLog{
		{HabitID: "h1", Date: "2025-06-01", DurationMinutes: 30},
		{HabitID: "h1", Date: "2025-06-02", DurationMinutes: 0}, // zero time is not activity
	}
	sessions := []models.HabitSession{
		{HabitID: "h1", StartTime: time.Date(2025, 6, 3, 9, 0, 0, 0, loc), DurationMinutes: intPtr(10)},
		{HabitID: "h1", StartTime: time.Date(2025, 6, 4, 9, 0, 0, 0, loc), DurationMinutes: nil},
	}

	activity := ActivityDates(logs, sessions, loc)

	if !activity["h1"]["2025-06-01"] {
		t.Error("expected log activity on 2025-06-01")
	}
	if activity["h1"]["2025-06-02"] {
		t.Error("zero-duration log must not count as activity")
	}
	if !activity["h1"]["2025-06-03"] {
		t.Error("expected session activity on 2025-06-03")
	}
	if activity["h1"]["2025-06-04"] {
		t.Error("nil-duration session must not count as activity")
	}
}

func TestSummarizeDay(t *testing.T) {
	logs := []models.HabitLog{
		{HabitID: "h1", DurationMinutes: 30, IsCompleted: true},
		{HabitID: "h2", DurationMinutes: 45, IsCompleted: true},
		{HabitID: "h3", DurationMinutes: 0, IsCompleted: false},
	}

	stat := SummarizeDay("2025-06-02", logs, 4)

	if stat.Day != "Mon" {
		t.Errorf("Day = %q, want Mon", stat.Day)
	}
	if stat.Completed != 2 {
		t.Errorf("Completed = %d, want 2", stat.Completed)
	}
	if stat.TotalTime != 75 {
		t.Errorf("TotalTime = %d, want 75", stat.TotalTime)
	}
	if stat.Total != 4 {
		t.Errorf("Total = %d, want 4", stat.Total)
	}
}

func TestPeriodShares(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", Name: "Coding", Color: "#F59E0B"},
		{ID: "h2", Name: "Reading", Color: "#10B981"},
	}
	logs := []models.HabitLog{
		{HabitID: "h1", DurationMinutes: 180},
		{HabitID: "h1", DurationMinutes: 90},
		{HabitID: "h2", DurationMinutes: 90},
	}

	shares := PeriodShares(habits, logs)

	if len(shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(shares))
	}
	if shares[0].Habit != "Coding" {
		t.Errorf("expected Coding first (most hours), got %s", shares[0].Habit)
	}
	if shares[0].Hours != 4.5 {
		t.Errorf("Hours = %v, want 4.5", shares[0].Hours)
	}
	if shares[0].Percentage != 75 {
		t.Errorf("Percentage = %d, want 75", shares[0].Percentage)
	}
	if shares[1].Percentage != 25 {
		t.Errorf("Percentage = %d, want 25", shares[1].Percentage)
	}
}
