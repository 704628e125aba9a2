package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/habitual/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		Name:          "Reading",
		Category:      models.CategoryLearning,
		TargetMinutes: 30,
		Status:        models.StatusActive,
	}
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Habit)
		wantErr bool
	}{
		{"valid", func(h *models.Habit) {}, false},
		{"empty name", func(h *models.Habit) { h.Name = "" }, true},
		{"whitespace name", func(h *models.Habit) { h.Name = "   " }, true},
		{"name too long", func(h *models.Habit) { h.Name = strings.Repeat("x", 101) }, true},
		{"unknown category", func(h *models.Habit) { h.Category = "gaming" }, true},
		{"negative target", func(h *models.Habit) { h.TargetMinutes = -5 }, true},
		{"zero target ok", func(h *models.Habit) { h.TargetMinutes = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habit := validHabit()
			tt.mutate(&habit)

			err := ValidateHabit(habit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabit() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 45, false},
		{"max", 480, false},
		{"over max", 481, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogDuration(tt.minutes)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLogDuration(%d) error = %v, wantErr %v", tt.minutes, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2025-06-01"); err != nil {
		t.Errorf("ValidateDate() error = %v", err)
	}
	if err := ValidateDate("06/01/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if err := ValidateDate("2025-13-01"); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestValidateReminderTime(t *testing.T) {
	if err := ValidateReminderTime("20:00"); err != nil {
		t.Errorf("ValidateReminderTime() error = %v", err)
	}
	if err := ValidateReminderTime("8pm"); err == nil {
		t.Error("expected error for non HH:MM time")
	}
}

func TestValidateTimezone(t *testing.T) {
	if err := ValidateTimezone("America/New_York"); err != nil {
		t.Errorf("ValidateTimezone() error = %v", err)
	}
	if err := ValidateTimezone("Local"); err != nil {
		t.Errorf("ValidateTimezone(Local) error = %v", err)
	}
	if err := ValidateTimezone("Mars/Olympus"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []models.Status{models.StatusActive, models.StatusPaused, models.StatusComplete, models.StatusArchived} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	if ValidStatus("deleted") {
		t.Error("ValidStatus(deleted) = true, want false")
	}
}
