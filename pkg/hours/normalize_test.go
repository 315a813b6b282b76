package hours

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeStructured(t *testing.T) {
	raw := RawSchedule{
		WeekdaySchedule: json.RawMessage(`{
			"monday":  {"open":"09:00","close":"17:00","isOpen":true},
			"Tuesday": {"open":"10:00","close":"16:00","isOpen":true},
			"friday":  {"open":"","close":"","isOpen":false}
		}`),
		WeekendSchedule: json.RawMessage(`{
			"saturday": {"open":"10:00","close":"14:00","isOpen":true}
		}`),
		HolidayHours: json.RawMessage(`{"open":"11:00","close":"13:00","isOpen":true}`),
	}

	s := Normalize(raw)

	if s.Source != SourceStructured {
		t.Fatalf("source = %q, expected structured", s.Source)
	}
	if len(s.Weekly) != 7 {
		t.Fatalf("expected all seven day keys, got %d", len(s.Weekly))
	}
	if got := s.Weekly["monday"]; got != (DaySchedule{Open: "09:00", Close: "17:00", IsOpen: true}) {
		t.Errorf("monday = %+v", got)
	}
	if got := s.Weekly["tuesday"]; !got.IsOpen || got.Open != "10:00" {
		t.Errorf("capitalized day key not canonicalized: %+v", got)
	}
	if s.Weekly["friday"].IsOpen {
		t.Error("friday should stay closed")
	}
	if s.Weekly["sunday"].IsOpen {
		t.Error("unmentioned day should come back closed")
	}
	if s.Holiday == nil || s.Holiday.Open != "11:00" {
		t.Errorf("holiday = %+v", s.Holiday)
	}
}

func TestNormalizeRangeText(t *testing.T) {
	raw := RawSchedule{
		Schedule: json.RawMessage(`{
			"weekday": {"Monday": "09:00 - 17:00", "Tuesday": "Closed"},
			"weekend": {"Saturday": "10:00 - 14:00"},
			"holiday": {"Holiday": "11:00 - 13:00"}
		}`),
	}

	s := Normalize(raw)

	if s.Source != SourceRangeText {
		t.Fatalf("source = %q, expected range_text", s.Source)
	}
	if got := s.Weekly["monday"]; got != (DaySchedule{Open: "09:00", Close: "17:00", IsOpen: true}) {
		t.Errorf("monday = %+v", got)
	}
	if s.Weekly["tuesday"].IsOpen {
		t.Error("tuesday marked Closed should have isOpen false")
	}
	if got := s.Weekly["saturday"]; got.Open != "10:00" || !got.IsOpen {
		t.Errorf("saturday = %+v", got)
	}
	if s.Holiday == nil || s.Holiday.Open != "11:00" || s.Holiday.Close != "13:00" {
		t.Errorf("holiday = %+v", s.Holiday)
	}
}

func TestNormalizeLegacyText(t *testing.T) {
	raw := RawSchedule{
		WeekdaySchedule: json.RawMessage(`"Open every day from dawn to dusk"`),
	}

	s := Normalize(raw)

	if s.Source != SourceOpaqueText {
		t.Fatalf("source = %q, expected opaque_text", s.Source)
	}
	if !s.IsLegacyText() {
		t.Error("IsLegacyText() should report true")
	}
	if s.LegacyText != "Open every day from dawn to dusk" {
		t.Errorf("legacy text = %q", s.LegacyText)
	}
	if len(s.Weekly) != 0 {
		t.Errorf("legacy text should yield empty weekly, got %v", s.Weekly)
	}
}

func TestNormalizeLegacyTextFromWeekendField(t *testing.T) {
	raw := RawSchedule{
		WeekendSchedule: json.RawMessage(`"Weekends by appointment"`),
	}

	s := Normalize(raw)
	if s.Source != SourceOpaqueText || s.LegacyText != "Weekends by appointment" {
		t.Errorf("got source %q text %q", s.Source, s.LegacyText)
	}
}

func TestNormalizeStructuredWinsOverRangeText(t *testing.T) {
	raw := RawSchedule{
		WeekdaySchedule: json.RawMessage(`{"monday":{"open":"09:00","close":"17:00","isOpen":true}}`),
		Schedule:        json.RawMessage(`{"weekday":{"Monday":"08:00 - 12:00"}}`),
	}

	s := Normalize(raw)
	if s.Source != SourceStructured || s.Weekly["monday"].Open != "09:00" {
		t.Errorf("structured encoding should win, got %q %+v", s.Source, s.Weekly["monday"])
	}
}

func TestNormalizeGarbageNeverFails(t *testing.T) {
	inputs := []RawSchedule{
		{},
		{WeekdaySchedule: json.RawMessage(`42`)},
		{WeekdaySchedule: json.RawMessage(`[1,2,3]`)},
		{WeekdaySchedule: json.RawMessage(`{"monday": "not an object"}`)},
		{WeekdaySchedule: json.RawMessage(`{"breakfast": {"open":"09:00"}}`)},
		{WeekdaySchedule: json.RawMessage(`{{{`)},
		{WeekdaySchedule: json.RawMessage(`""`)},
		{Schedule: json.RawMessage(`{"weekday": {"Monday": "whenever"}}`)},
		{Schedule: json.RawMessage(`"just a string"`)},
		{HolidayHours: json.RawMessage(`"Closed on holidays"`)},
	}

	for i, raw := range inputs {
		s := Normalize(raw)
		if s.Source != SourceEmpty {
			t.Errorf("input %d: source = %q, expected empty", i, s.Source)
		}
		if len(s.Weekly) != 0 {
			t.Errorf("input %d: expected empty weekly, got %v", i, s.Weekly)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := RawSchedule{
		WeekdaySchedule: json.RawMessage(`{
			"monday":    {"open":"09:00","close":"17:00","isOpen":true},
			"tuesday":   {"open":"09:00","close":"17:00","isOpen":true},
			"wednesday": {"open":"","close":"","isOpen":false},
			"thursday":  {"open":"09:00","close":"17:00","isOpen":true},
			"friday":    {"open":"09:00","close":"17:00","isOpen":true}
		}`),
		WeekendSchedule: json.RawMessage(`{
			"saturday": {"open":"10:00","close":"14:00","isOpen":true},
			"sunday":   {"open":"","close":"","isOpen":false}
		}`),
	}

	first := Normalize(raw)

	// Re-encode the canonical form the way the editor persists it and
	// normalize again.
	weekday := map[string]DaySchedule{}
	weekend := map[string]DaySchedule{}
	for _, day := range WeekdayGroup {
		weekday[day] = first.Weekly[day]
	}
	for _, day := range WeekendGroup {
		weekend[day] = first.Weekly[day]
	}
	weekdayJSON, _ := json.Marshal(weekday)
	weekendJSON, _ := json.Marshal(weekend)

	second := Normalize(RawSchedule{
		WeekdaySchedule: weekdayJSON,
		WeekendSchedule: weekendJSON,
	})

	if !reflect.DeepEqual(first.Weekly, second.Weekly) {
		t.Errorf("normalization not idempotent:\nfirst:  %v\nsecond: %v", first.Weekly, second.Weekly)
	}
}
