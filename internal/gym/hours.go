package gym

import (
	"strconv"
	"strings"
	"time"
)

const closedSentinel = "closed"

// weekdayKeys is indexed by time.Weekday (0 = Sunday).
var weekdayKeys = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// BusinessStatus evaluates a gym's opening hours against the given
// wall-clock time. It returns the status label and the raw hours
// string for the current day. Malformed ranges are skipped, never
// treated as errors.
func BusinessStatus(hours OpeningHours, now time.Time, labels Labels) (status, todayHours string) {
	if len(hours) == 0 {
		return labels.StatusUnknown, labels.StatusUnknown
	}

	today, ok := hours[weekdayKeys[now.Weekday()]]
	if !ok || strings.EqualFold(strings.TrimSpace(today), closedSentinel) {
		return labels.StatusClosedToday, labels.StatusClosedToday
	}

	minuteOfDay := now.Hour()*60 + now.Minute()
	for _, r := range strings.Split(today, ",") {
		start, end, ok := parseRange(r)
		if !ok {
			continue
		}
		if start <= minuteOfDay && minuteOfDay <= end {
			return labels.StatusOpen, today
		}
	}

	return labels.StatusClosed, today
}

// parseRange parses "HH:MM-HH:MM" into start/end minutes of day.
func parseRange(r string) (start, end int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(r), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, ok = parseMinutes(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok = parseMinutes(parts[1])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseMinutes(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
