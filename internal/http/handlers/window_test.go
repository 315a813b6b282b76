package handlers

import (
	"testing"

	"vitrine/pkg/hours"
)

func TestDisplayRows(t *testing.T) {
	weekly := hours.WeeklySchedule{}
	for _, day := range hours.Days {
		weekly[day] = hours.DaySchedule{}
	}
	weekly["monday"] = hours.DaySchedule{Open: "09:00", Close: "17:00", IsOpen: true}
	weekly["saturday"] = hours.DaySchedule{Open: "10:00", Close: "14:00", IsOpen: true}

	rows := displayRows(hours.Schedule{Weekly: weekly, Source: hours.SourceStructured})
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}

	// rows come out in day order regardless of map iteration
	for i, day := range hours.Days {
		if rows[i].Day != day {
			t.Errorf("row %d: expected day %s, got %s", i, day, rows[i].Day)
		}
	}

	if rows[0].Label != "9:00 AM - 5:00 PM" {
		t.Errorf("monday label = %q", rows[0].Label)
	}
	if rows[1].Label != "Closed" {
		t.Errorf("tuesday label = %q", rows[1].Label)
	}
	if rows[5].Label != "10:00 AM - 2:00 PM" {
		t.Errorf("saturday label = %q", rows[5].Label)
	}
}

func TestDisplayRowsEmpty(t *testing.T) {
	if rows := displayRows(hours.Schedule{Source: hours.SourceEmpty}); rows != nil {
		t.Errorf("expected nil rows for empty schedule, got %v", rows)
	}
	legacy := hours.Schedule{Source: hours.SourceOpaqueText, LegacyText: "Open 24/7"}
	if rows := displayRows(legacy); rows != nil {
		t.Errorf("expected nil rows for legacy text schedule, got %v", rows)
	}
}

func TestHolidayRow(t *testing.T) {
	if row := holidayRow(hours.Schedule{}); row != nil {
		t.Errorf("expected nil holiday row, got %v", row)
	}

	holiday := &hours.DaySchedule{Open: "08:00", Close: "12:00", IsOpen: true}
	row := holidayRow(hours.Schedule{Holiday: holiday})
	if row == nil {
		t.Fatal("expected a holiday row")
	}
	if row.Day != "holiday" {
		t.Errorf("day = %q", row.Day)
	}
	if row.Label != "8:00 AM - 12:00 PM" {
		t.Errorf("label = %q", row.Label)
	}
}

func TestDayLabel(t *testing.T) {
	tests := []struct {
		name     string
		day      hours.DaySchedule
		expected string
	}{
		{"closed day", hours.DaySchedule{IsOpen: false}, "Closed"},
		{"closed ignores times", hours.DaySchedule{Open: "09:00", Close: "17:00"}, "Closed"},
		{"regular hours", hours.DaySchedule{Open: "09:00", Close: "17:30", IsOpen: true}, "9:00 AM - 5:30 PM"},
		{"malformed times pass through", hours.DaySchedule{Open: "soonish", Close: "late", IsOpen: true}, "soonish - late"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dayLabel(tt.day); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
