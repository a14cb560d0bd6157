package wcpe

import (
	"slices"
	"time"
)

// HourRange is a half-open range of hours [From, To) within one day.
type HourRange struct {
	From int
	To   int
}

// DayRange is an inclusive range of days of the month. Combined with a
// weekday it selects occurrences like "first Sunday" (days 1 through 7).
type DayRange struct {
	From int
	To   int
}

// ScheduleRule names the program airing during a weekly time slot,
// optionally narrowed to a part of the year or of the month.
type ScheduleRule struct {
	Weekdays []time.Weekday // weekdays the rule applies to
	Hours    HourRange      // station-local hours the rule covers
	Days     *DayRange      // optional day-of-month bound
	Months   []time.Month   // optional month bound
	Program  string
}

func (r *ScheduleRule) matches(t time.Time) bool {
	if !slices.Contains(r.Weekdays, t.Weekday()) {
		return false
	}
	if h := t.Hour(); h < r.Hours.From || h >= r.Hours.To {
		return false
	}
	if r.Days != nil && (t.Day() < r.Days.From || t.Day() > r.Days.To) {
		return false
	}
	if len(r.Months) > 0 && !slices.Contains(r.Months, t.Month()) {
		return false
	}
	return true
}

// Schedule maps a station-local time to the name of the program on air.
// Specialty rules come before the regular weekly grid; the first matching
// rule wins.
type Schedule struct {
	rules []ScheduleRule
}

func NewSchedule(rules []ScheduleRule) *Schedule {
	return &Schedule{rules: rules}
}

// ProgramFor returns the program airing at t. The time must already be
// expressed in the station timezone. When no rule covers t the missing-field
// sentinel is returned: a coverage gap is a data problem, not a fault.
func (s *Schedule) ProgramFor(t time.Time) string {
	for i := range s.rules {
		if s.rules[i].matches(t) {
			return s.rules[i].Program
		}
	}
	return Missing
}

var (
	weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	saturday = []time.Weekday{time.Saturday}
	sunday   = []time.Weekday{time.Sunday}
	everyDay = []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}

	// Saturday opera broadcast season.
	operaSeason = []time.Month{
		time.December, time.January, time.February,
		time.March, time.April, time.May,
	}
)

// DefaultSchedule is the station's weekly program grid with its specialty
// overrides, used when the playlist page itself names no program.
func DefaultSchedule() *Schedule {
	return NewSchedule([]ScheduleRule{
		// Specialty programs first.
		{Weekdays: everyDay, Hours: HourRange{0, 24}, Days: &DayRange{24, 25}, Months: []time.Month{time.December}, Program: "A Classical Christmas"},
		{Weekdays: saturday, Hours: HourRange{13, 17}, Months: operaSeason, Program: "The Metropolitan Opera"},
		{Weekdays: []time.Weekday{time.Thursday}, Hours: HourRange{19, 22}, Program: "Thursday Night Opera House"},
		{Weekdays: []time.Weekday{time.Monday}, Hours: HourRange{20, 22}, Program: "Monday Night at the Symphony"},
		{Weekdays: sunday, Hours: HourRange{17, 18}, Days: &DayRange{1, 7}, Program: "Renaissance Fare"},

		// Weekday grid.
		{Weekdays: weekdays, Hours: HourRange{0, 6}, Program: "Music in the Night"},
		{Weekdays: weekdays, Hours: HourRange{6, 10}, Program: "Sleepers, Awake!"},
		{Weekdays: weekdays, Hours: HourRange{10, 13}, Program: "Classical Café"},
		{Weekdays: weekdays, Hours: HourRange{13, 18}, Program: "As You Like It"},
		{Weekdays: weekdays, Hours: HourRange{18, 20}, Program: "Allegro"},
		{Weekdays: weekdays, Hours: HourRange{20, 22}, Program: "Evening Concert"},
		{Weekdays: weekdays, Hours: HourRange{22, 24}, Program: "Music in the Night"},

		// Saturday grid.
		{Weekdays: saturday, Hours: HourRange{0, 6}, Program: "Music in the Night"},
		{Weekdays: saturday, Hours: HourRange{6, 10}, Program: "Sleepers, Awake!"},
		{Weekdays: saturday, Hours: HourRange{10, 13}, Program: "Weekend Classics"},
		{Weekdays: saturday, Hours: HourRange{13, 18}, Program: "Saturday Afternoon Concert"},
		{Weekdays: saturday, Hours: HourRange{18, 22}, Program: "Saturday Evening Request Program"},
		{Weekdays: saturday, Hours: HourRange{22, 24}, Program: "Music in the Night"},

		// Sunday grid.
		{Weekdays: sunday, Hours: HourRange{0, 6}, Program: "Music in the Night"},
		{Weekdays: sunday, Hours: HourRange{6, 8}, Program: "Sing for Joy"},
		{Weekdays: sunday, Hours: HourRange{8, 12}, Program: "Great Sacred Music"},
		{Weekdays: sunday, Hours: HourRange{12, 18}, Program: "Music for a Sunday Afternoon"},
		{Weekdays: sunday, Hours: HourRange{18, 21}, Program: "Preview!"},
		{Weekdays: sunday, Hours: HourRange{21, 24}, Program: "Peaceful Reflections"},
	})
}
