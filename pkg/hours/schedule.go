// Package hours normalizes business operating-hours data and resolves the
// live open/closed status shown on dashboards and public window pages.
//
// Business records have accumulated three incompatible schedule encodings
// over time: structured per-day objects, labelled "HH:MM - HH:MM" range
// strings, and free-text legacy sentences. Everything is routed through one
// canonical Schedule so callers never type-check raw record fields.
package hours

import "encoding/json"

// Source identifies which historical encoding a Schedule was built from.
type Source string

const (
	// SourceStructured means the record carried per-day {open, close, isOpen} objects.
	SourceStructured Source = "structured"
	// SourceRangeText means the record carried "HH:MM - HH:MM" / "Closed" strings.
	SourceRangeText Source = "range_text"
	// SourceOpaqueText means only an unparseable legacy sentence was found.
	SourceOpaqueText Source = "opaque_text"
	// SourceEmpty means no recognizable schedule data was present.
	SourceEmpty Source = "empty"
)

// Days lists the canonical lowercase day keys in display order.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeekdayGroup and WeekendGroup are the day-group bulk-edit targets.
var (
	WeekdayGroup = Days[:5]
	WeekendGroup = Days[5:]
)

// DaySchedule holds one day's hours. Open and Close are zero-padded "HH:MM"
// strings; when IsOpen is false they are kept only for editing convenience
// and are never consulted when resolving status.
type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"isOpen"`
}

// WeeklySchedule maps canonical day keys to day schedules. After
// normalization of structured or range-text input all seven keys are
// present; days the record never mentioned come back closed.
type WeeklySchedule map[string]DaySchedule

// Schedule is the canonical normalized form every encoding converges to.
type Schedule struct {
	Weekly     WeeklySchedule `json:"weekly"`
	Holiday    *DaySchedule   `json:"holiday,omitempty"`
	Source     Source         `json:"source"`
	LegacyText string         `json:"legacy_text,omitempty"`
}

// IsLegacyText reports whether only an opaque legacy sentence was recovered.
func (s Schedule) IsLegacyText() bool {
	return s.Source == SourceOpaqueText
}

// Status is the resolved open/closed state rendered into the status badge.
type Status struct {
	IsOpen  bool   `json:"is_open"`
	Message string `json:"message"`
}

// RawSchedule carries the schedule-bearing fields of a business record
// exactly as stored. Each field may hold an object, a bare JSON string, or
// nothing; Normalize sorts out which encoding is actually present.
type RawSchedule struct {
	WeekdaySchedule json.RawMessage `json:"weekdaySchedule,omitempty"`
	WeekendSchedule json.RawMessage `json:"weekendSchedule,omitempty"`
	HolidayHours    json.RawMessage `json:"holidayHours,omitempty"`
	Schedule        json.RawMessage `json:"schedule,omitempty"`
}
