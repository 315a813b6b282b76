package hours

import (
	"strings"
	"time"
)

// Canonical status messages. The old UI modules each carried their own
// variant of these strings; resolution now has exactly one per case.
const (
	msgOwnerOpen    = "Open Now (Owner set)"
	msgOwnerClosed  = "Closed (Owner set)"
	msgClosedToday  = "Closed today"
	msgClosed       = "Closed"
	msgNotSet       = "Hours not set"
	msgNotAvailable = "Hours not available"
)

// Resolve computes the open/closed status badge for a normalized schedule at
// the given instant. Precedence: manual override, legacy text, structured
// schedule, no schedule. The day key and clock time are taken from now in
// its own location; callers decide whether that clock is business-local or
// viewer-local.
//
// Resolve is total: it never panics out, and any malformed schedule data
// that slipped past normalization degrades to "Hours not available".
func Resolve(s Schedule, override *bool, now time.Time) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			status = Status{IsOpen: false, Message: msgNotAvailable}
		}
	}()

	// Owner override wins over everything, including days marked closed.
	if override != nil {
		if *override {
			return Status{IsOpen: true, Message: msgOwnerOpen}
		}
		return Status{IsOpen: false, Message: msgOwnerClosed}
	}

	// A legacy sentence has no per-day structure to resolve against; it is
	// shown as-is and the business counts as open while it is displayed.
	if s.IsLegacyText() && s.LegacyText != "" {
		return Status{IsOpen: true, Message: s.LegacyText}
	}

	if len(s.Weekly) == 0 {
		return Status{IsOpen: false, Message: msgNotSet}
	}

	day, ok := s.Weekly[dayKey(now)]
	if !ok || !day.IsOpen {
		return Status{IsOpen: false, Message: msgClosedToday}
	}

	if !ValidateTime(day.Open) || !ValidateTime(day.Close) {
		return Status{IsOpen: false, Message: msgNotAvailable}
	}

	// Zero-padded same-day times compare correctly as strings. The close
	// minute is inclusive: at 17:00 a 09:00-17:00 business is still open.
	current := now.Format("15:04")
	open, close := padTime(day.Open), padTime(day.Close)
	switch {
	case current < open:
		return Status{IsOpen: false, Message: "Opens at " + ToDisplay(open)}
	case current <= close:
		return Status{IsOpen: true, Message: "Open until " + ToDisplay(close)}
	default:
		return Status{IsOpen: false, Message: msgClosed}
	}
}

// padTime zero-pads a valid "H:MM" to "HH:MM" so string comparison works.
func padTime(t string) string {
	if len(t) == 4 {
		return "0" + t
	}
	return t
}

// dayKey returns the canonical lowercase day name for an instant.
func dayKey(now time.Time) string {
	return strings.ToLower(now.Weekday().String())
}
