package wcpe

import (
	"time"
)

// ValidateAvailability checks a request time against the trailing window for
// which the station publishes playlists. It runs before any fetch. Both
// bounds live in station time: the window ends at the station-local end of
// now's day and opens window earlier, exclusive.
func ValidateAvailability(t, now time.Time, loc *time.Location, window time.Duration) error {
	eod := EndOfDay(now, loc)
	if t.After(eod) || !t.After(eod.Add(-window)) {
		return ErrUnavailable
	}
	return nil
}
