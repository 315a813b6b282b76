package hours

import (
	"testing"
	"time"
)

// monday returns 2024-01-15 (a Monday) at the given clock time.
func monday(t *testing.T, hour, min int) time.Time {
	t.Helper()
	now := time.Date(2024, 1, 15, hour, min, 0, 0, time.UTC)
	if now.Weekday() != time.Monday {
		t.Fatal("fixture date is not a Monday")
	}
	return now
}

func nineToFive() Schedule {
	weekly := WeeklySchedule{}
	for _, day := range Days {
		weekly[day] = DaySchedule{Open: "09:00", Close: "17:00", IsOpen: true}
	}
	return Schedule{Weekly: weekly, Source: SourceStructured}
}

func boolPtr(b bool) *bool { return &b }

func TestResolveOpenWindow(t *testing.T) {
	s := nineToFive()

	tests := []struct {
		hour, min int
		isOpen    bool
		message   string
	}{
		{8, 59, false, "Opens at 9:00 AM"},
		{9, 0, true, "Open until 5:00 PM"},
		{12, 30, true, "Open until 5:00 PM"},
		{17, 0, true, "Open until 5:00 PM"}, // close minute is inclusive
		{17, 1, false, "Closed"},
		{23, 59, false, "Closed"},
		{0, 0, false, "Opens at 9:00 AM"},
	}

	for _, test := range tests {
		got := Resolve(s, nil, monday(t, test.hour, test.min))
		if got.IsOpen != test.isOpen || got.Message != test.message {
			t.Errorf("at %02d:%02d got %+v, expected {%v %q}",
				test.hour, test.min, got, test.isOpen, test.message)
		}
	}
}

func TestResolveClosedDay(t *testing.T) {
	s := nineToFive()
	day := s.Weekly["monday"]
	day.IsOpen = false
	s.Weekly["monday"] = day

	for _, clock := range [][2]int{{0, 0}, {12, 0}, {23, 59}} {
		got := Resolve(s, nil, monday(t, clock[0], clock[1]))
		if got.IsOpen || got.Message != "Closed today" {
			t.Errorf("closed day at %02d:%02d resolved to %+v", clock[0], clock[1], got)
		}
	}
}

func TestResolveMissingDay(t *testing.T) {
	s := Schedule{
		Weekly: WeeklySchedule{"tuesday": {Open: "09:00", Close: "17:00", IsOpen: true}},
		Source: SourceStructured,
	}

	got := Resolve(s, nil, monday(t, 12, 0))
	if got.IsOpen || got.Message != "Closed today" {
		t.Errorf("missing day resolved to %+v", got)
	}
}

func TestResolveManualOverride(t *testing.T) {
	s := nineToFive()
	day := s.Weekly["monday"]
	day.IsOpen = false
	s.Weekly["monday"] = day

	// Force open beats a day marked closed.
	got := Resolve(s, boolPtr(true), monday(t, 3, 0))
	if !got.IsOpen || got.Message != "Open Now (Owner set)" {
		t.Errorf("force open resolved to %+v", got)
	}

	// Force closed beats an open window.
	open := nineToFive()
	got = Resolve(open, boolPtr(false), monday(t, 12, 0))
	if got.IsOpen || got.Message != "Closed (Owner set)" {
		t.Errorf("force closed resolved to %+v", got)
	}

	// Nil defers to the schedule.
	got = Resolve(open, nil, monday(t, 12, 0))
	if !got.IsOpen {
		t.Errorf("nil override should defer to schedule, got %+v", got)
	}
}

func TestResolveLegacyText(t *testing.T) {
	s := Schedule{
		Weekly:     WeeklySchedule{},
		Source:     SourceOpaqueText,
		LegacyText: "Open whenever the lights are on",
	}

	got := Resolve(s, nil, monday(t, 4, 0))
	if !got.IsOpen || got.Message != "Open whenever the lights are on" {
		t.Errorf("legacy text resolved to %+v", got)
	}

	// Override still wins over legacy text.
	got = Resolve(s, boolPtr(false), monday(t, 4, 0))
	if got.IsOpen || got.Message != "Closed (Owner set)" {
		t.Errorf("override over legacy text resolved to %+v", got)
	}
}

func TestResolveNoSchedule(t *testing.T) {
	s := Schedule{Weekly: WeeklySchedule{}, Source: SourceEmpty}

	got := Resolve(s, nil, monday(t, 12, 0))
	if got.IsOpen || got.Message != "Hours not set" {
		t.Errorf("empty schedule resolved to %+v", got)
	}
}

func TestResolveMalformedTimesDegrade(t *testing.T) {
	tests := []DaySchedule{
		{Open: "25:00", Close: "17:00", IsOpen: true},
		{Open: "09:00", Close: "banana", IsOpen: true},
		{Open: "", Close: "", IsOpen: true},
	}

	for _, day := range tests {
		s := Schedule{
			Weekly: WeeklySchedule{"monday": day},
			Source: SourceStructured,
		}
		got := Resolve(s, nil, monday(t, 12, 0))
		if got.IsOpen || got.Message != "Hours not available" {
			t.Errorf("malformed day %+v resolved to %+v", day, got)
		}
	}
}

func TestResolveHolidayEntryIgnored(t *testing.T) {
	s := nineToFive()
	s.Holiday = &DaySchedule{Open: "00:00", Close: "00:01", IsOpen: true}

	got := Resolve(s, nil, monday(t, 12, 0))
	if !got.IsOpen || got.Message != "Open until 5:00 PM" {
		t.Errorf("holiday entry should not drive status, got %+v", got)
	}
}

func TestResolveUnpaddedHours(t *testing.T) {
	s := Schedule{
		Weekly: WeeklySchedule{"monday": {Open: "9:00", Close: "17:00", IsOpen: true}},
		Source: SourceStructured,
	}

	got := Resolve(s, nil, monday(t, 12, 0))
	if !got.IsOpen || got.Message != "Open until 5:00 PM" {
		t.Errorf("unpadded open time resolved to %+v", got)
	}
}
