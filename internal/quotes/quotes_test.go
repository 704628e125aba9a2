package quotes

import (
	"testing"
	"time"
)

func TestOfDayIsDeterministic(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	morning := OfDay(day.Add(8 * time.Hour))
	evening := OfDay(day.Add(22 * time.Hour))
	if morning != evening {
		t.Errorf("same day yielded different quotes: %q vs %q", morning.Text, evening.Text)
	}
}

func TestOfDayRotates(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	today := OfDay(day)
	tomorrow := OfDay(day.AddDate(0, 0, 1))
	if today == tomorrow {
		t.Error("consecutive days yielded the same quote")
	}
}

func TestOfDayCyclesFullRotation(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	first := OfDay(day)
	wrapped := OfDay(day.AddDate(0, 0, len(All())))
	if first != wrapped {
		t.Errorf("rotation of %d days did not wrap", len(All()))
	}
}

func TestAllQuotesPopulated(t *testing.T) {
	for i, q := range All() {
		if q.Text == "" || q.Author == "" {
			t.Errorf("quote %d has empty fields: %+v", i, q)
		}
	}
}
