package hours

import "regexp"

var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateTime reports whether value is a 24-hour "HH:MM" time. A single
// digit hour is accepted ("9:00"); "24:00" and 12-hour forms are not.
func ValidateTime(value string) bool {
	return timePattern.MatchString(value)
}

// FieldErrors maps editor field keys ("mondayOpen", "mondayClose", ...) to
// their validation message. A failed field blocks only its own submit; the
// rest of the form stays valid.
type FieldErrors map[string]string

// ValidateDay checks one day's draft. Time fields are only validated while
// the day is marked open; a closed day may carry anything in its open/close
// fields.
func ValidateDay(day string, d DaySchedule) FieldErrors {
	errs := FieldErrors{}
	if !d.IsOpen {
		return errs
	}
	if !ValidateTime(d.Open) {
		errs[day+"Open"] = "invalid time, use HH:MM"
	}
	if !ValidateTime(d.Close) {
		errs[day+"Close"] = "invalid time, use HH:MM"
	}
	return errs
}

// ValidateWeekly checks every day of a weekly draft and merges the
// field-scoped errors.
func ValidateWeekly(w WeeklySchedule) FieldErrors {
	errs := FieldErrors{}
	for day, d := range w {
		for field, msg := range ValidateDay(day, d) {
			errs[field] = msg
		}
	}
	return errs
}

// ApplySameHours is the "same hours" bulk edit: one open/close pair applied
// to every day in the group. Per-day isOpen flags are left untouched, so a
// day the owner keeps closed stays closed with the new hours on file.
func ApplySameHours(w WeeklySchedule, group []string, open, close string) WeeklySchedule {
	out := make(WeeklySchedule, len(w))
	for day, d := range w {
		out[day] = d
	}
	for _, day := range group {
		d := out[day]
		d.Open = open
		d.Close = close
		out[day] = d
	}
	return out
}
