package hours

import (
	"fmt"
	"strconv"
	"strings"
)

// ToDisplay converts a 24-hour "HH:MM" time to its 12-hour display form,
// e.g. "13:05" -> "1:05 PM" and "00:00" -> "12:00 AM". Anything that does
// not look like a valid time is returned unchanged so a bad record field
// renders as-is instead of breaking the page.
func ToDisplay(t string) string {
	if !ValidateTime(t) {
		return t
	}

	parts := strings.SplitN(t, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%s %s", displayHour, parts[1], ampm)
}
