package wcpe

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	// Embedded zone data so the station timezone still resolves on hosts
	// without a zoneinfo directory (router firmware, scratch containers).
	_ "time/tzdata"
)

// ParseClock parses a wall-clock time in "HH:MM" 24-hour form or "H:MMam"
// 12-hour form, auto-detected by the trailing two-letter meridiem suffix.
// 12am maps to hour 0 and 12pm stays 12.
func ParseClock(s string) (hour, minute int, err error) {
	text := strings.TrimSpace(s)

	// Split off the meridiem suffix when the last two characters are letters.
	var meridiem string
	if len(text) >= 2 && isLetters(text[len(text)-2:]) {
		meridiem = strings.ToLower(text[len(text)-2:])
		text = text[:len(text)-2]
		if meridiem != "am" && meridiem != "pm" {
			return 0, 0, fmt.Errorf("%w: unknown suffix in %q", ErrBadTime, s)
		}
	}

	colon := strings.IndexByte(text, ':')
	if colon < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	hour, err = strconv.Atoi(text[:colon])
	if err != nil || hour < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	minute, err = strconv.Atoi(text[colon+1:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadTime, s)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadTime, s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadTime, s)
		}
	}

	return hour, minute, nil
}

// ParseStationTime anchors a wall-clock time from the playlist page to the
// calendar day of base in the station timezone. A time inside the
// spring-forward DST gap returns ErrTimeGap: it never occurred on that day.
// A time inside the fall-back duplicate hour resolves to its first
// occurrence, the earlier absolute instant.
func ParseStationTime(base time.Time, loc *time.Location, s string) (time.Time, error) {
	hour, minute, err := ParseClock(s)
	if err != nil {
		return time.Time{}, err
	}

	year, month, day := base.In(loc).Date()
	t := time.Date(year, month, day, hour, minute, 0, 0, loc)
	// time.Date never fails: a nonexistent wall clock comes back shifted
	// across the gap, so a changed hour or minute reveals it.
	if t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("%w: %q on %04d-%02d-%02d", ErrTimeGap, s, year, month, day)
	}
	if earlier := t.Add(-time.Hour); earlier.Day() == day && earlier.Hour() == hour && earlier.Minute() == minute {
		t = earlier
	}

	return t, nil
}

// EndOfDay returns the last representable instant of t's calendar day in the
// station timezone, 23:59:59.999999999 station-local.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
