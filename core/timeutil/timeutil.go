package timeutil

import (
	"fmt"
	"time"
)

// DayLayout is the wire format for calendar day strings.
const DayLayout = "2006-01-02"

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ParseDay parses a YYYY-MM-DD day string into midnight UTC of that day.
// Impossible dates (2025-02-30) are rejected.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	return t, nil
}

// ParseClock parses an HH:MM 24-hour clock string into minutes since
// midnight. Hour must be in [0,23] and minute in [0,59].
func ParseClock(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", clock)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%02d:%02d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", clock)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as HH:MM, wrapping past
// midnight (1500 -> "01:00").
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Instant combines a day and a clock string into an absolute instant.
func Instant(day, clock string) (time.Time, error) {
	d, err := ParseDay(day)
	if err != nil {
		return time.Time{}, err
	}
	m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(m) * time.Minute), nil
}

// Span resolves a day plus start/end clock strings into absolute start and
// end instants. An end numerically at or before the start lands on the next
// calendar day, with two refinements:
//   - end "00:00" is always midnight of the next day
//   - start == end is a zero-length span unless wrapEqual is set, in which
//     case it is a full 24h span
func Span(day, start, end string, wrapEqual bool) (time.Time, time.Time, error) {
	d, err := ParseDay(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	startMin, err := ParseClock(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endMin = resolveEnd(startMin, endMin, wrapEqual)

	s := d.Add(time.Duration(startMin) * time.Minute)
	e := d.Add(time.Duration(endMin) * time.Minute)
	return s, e, nil
}

// DurationMinutes computes the length of a start/end clock pair in minutes,
// applying midnight-wrap. The result is never negative.
func DurationMinutes(start, end string, wrapEqual bool) (int, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return resolveEnd(startMin, endMin, wrapEqual) - startMin, nil
}

func resolveEnd(startMin, endMin int, wrapEqual bool) int {
	switch {
	case endMin == 0:
		// "00:00" as an end is always next-day midnight.
		return MinutesPerDay
	case endMin < startMin:
		return endMin + MinutesPerDay
	case endMin == startMin && wrapEqual:
		return endMin + MinutesPerDay
	default:
		return endMin
	}
}
