package hours

import (
	"encoding/json"
	"sort"
	"strings"
)

// Normalize converts whichever schedule encoding the record carries into the
// canonical Schedule. Detection runs in priority order: structured per-day
// objects, labelled range-string record, opaque legacy string, absent. It
// never fails; anything unrecognizable degrades to SourceEmpty.
//
// Normalize is idempotent: feeding it a record that already stores the
// canonical structured encoding round-trips unchanged.
func Normalize(raw RawSchedule) Schedule {
	if weekly, ok := normalizeStructured(raw); ok {
		return Schedule{
			Weekly:  weekly,
			Holiday: decodeDay(raw.HolidayHours),
			Source:  SourceStructured,
		}
	}

	if s, ok := normalizeRangeText(raw.Schedule); ok {
		return s
	}

	if text, ok := legacyText(raw); ok {
		return Schedule{
			Weekly:     WeeklySchedule{},
			Source:     SourceOpaqueText,
			LegacyText: text,
		}
	}

	return Schedule{Weekly: WeeklySchedule{}, Source: SourceEmpty}
}

// normalizeStructured merges weekdaySchedule and weekendSchedule objects into
// one seven-key weekly map. Returns false when neither field holds at least
// one recognizable day entry.
func normalizeStructured(raw RawSchedule) (WeeklySchedule, bool) {
	weekday := decodeDayMap(raw.WeekdaySchedule)
	weekend := decodeDayMap(raw.WeekendSchedule)
	if len(weekday) == 0 && len(weekend) == 0 {
		return nil, false
	}

	weekly := make(WeeklySchedule, len(Days))
	for _, day := range Days {
		weekly[day] = DaySchedule{}
	}
	for day, d := range weekday {
		weekly[day] = d
	}
	for day, d := range weekend {
		weekly[day] = d
	}
	return weekly, true
}

// labelledSchedule is the historical "schedule" record: capitalized day
// names mapped to "HH:MM - HH:MM" or the literal "Closed".
type labelledSchedule struct {
	Weekday map[string]string `json:"weekday"`
	Weekend map[string]string `json:"weekend"`
	Holiday map[string]string `json:"holiday"`
}

func normalizeRangeText(raw json.RawMessage) (Schedule, bool) {
	if len(raw) == 0 {
		return Schedule{}, false
	}

	var labelled labelledSchedule
	if err := json.Unmarshal(raw, &labelled); err != nil {
		return Schedule{}, false
	}

	entries := make(map[string]DaySchedule)
	for _, group := range []map[string]string{labelled.Weekday, labelled.Weekend} {
		for name, value := range group {
			day := strings.ToLower(name)
			if !isDayName(day) {
				continue
			}
			if d, ok := parseRange(value); ok {
				entries[day] = d
			}
		}
	}
	if len(entries) == 0 {
		return Schedule{}, false
	}

	weekly := make(WeeklySchedule, len(Days))
	for _, day := range Days {
		weekly[day] = DaySchedule{}
	}
	for day, d := range entries {
		weekly[day] = d
	}

	return Schedule{
		Weekly:  weekly,
		Holiday: holidayFromRanges(labelled.Holiday),
		Source:  SourceRangeText,
	}, true
}

// parseRange parses a single "HH:MM - HH:MM" range or the literal "Closed".
func parseRange(value string) (DaySchedule, bool) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "Closed") {
		return DaySchedule{IsOpen: false}, true
	}
	parts := strings.Split(value, " - ")
	if len(parts) != 2 {
		return DaySchedule{}, false
	}
	return DaySchedule{
		Open:   strings.TrimSpace(parts[0]),
		Close:  strings.TrimSpace(parts[1]),
		IsOpen: true,
	}, true
}

// holidayFromRanges picks the holiday entry out of the labelled record. The
// key is decorative ("Holiday", a date, whatever the old editor wrote), so
// the lowest key wins to keep the result deterministic.
func holidayFromRanges(ranges map[string]string) *DaySchedule {
	keys := make([]string, 0, len(ranges))
	for k := range ranges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if d, ok := parseRange(ranges[k]); ok {
			return &d
		}
	}
	return nil
}

// legacyText recovers the free-text schedule sentence when weekdaySchedule
// or weekendSchedule is a bare string instead of a per-day object.
func legacyText(raw RawSchedule) (string, bool) {
	for _, field := range []json.RawMessage{raw.WeekdaySchedule, raw.WeekendSchedule} {
		var text string
		if err := json.Unmarshal(field, &text); err == nil && strings.TrimSpace(text) != "" {
			return text, true
		}
	}
	return "", false
}

// decodeDayMap decodes an object keyed by day name into canonical lowercase
// day entries. Unknown keys and malformed day values are skipped; anything
// that is not a JSON object yields an empty map.
func decodeDayMap(raw json.RawMessage) map[string]DaySchedule {
	out := make(map[string]DaySchedule)
	if len(raw) == 0 {
		return out
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out
	}
	for name, value := range fields {
		day := strings.ToLower(name)
		if !isDayName(day) {
			continue
		}
		var d DaySchedule
		if err := json.Unmarshal(value, &d); err != nil {
			continue
		}
		out[day] = d
	}
	return out
}

// decodeDay decodes a single {open, close, isOpen} object, typically the
// holidayHours field. Returns nil for anything else.
func decodeDay(raw json.RawMessage) *DaySchedule {
	if len(raw) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	var d DaySchedule
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	if d == (DaySchedule{}) {
		return nil
	}
	return &d
}

func isDayName(name string) bool {
	for _, day := range Days {
		if name == day {
			return true
		}
	}
	return false
}
