package wcpe

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// tassoRows mirrors the shape of a real morning playlist page.
func tassoRows() []Row {
	return []Row{
		{
			StartTimeRaw: "12:01am",
			Fields: map[Field]string{
				FieldProgram:     "Music in the Night",
				FieldComposer:    "Liszt",
				FieldTitle:       "Tasso, Lament and Triumph",
				FieldPerformers:  "London Philharmonic/Solti",
				FieldRecordLabel: "London",
			},
		},
		{
			StartTimeRaw: "6:00am",
			Fields: map[Field]string{
				FieldProgram:     "Sleepers, Awake!",
				FieldComposer:    "Handel",
				FieldTitle:       "Concerto Grosso in D, Op. 6 No. 5",
				FieldPerformers:  "Academy of Ancient Music/Manze",
				FieldRecordLabel: "Harmonia Mundi",
			},
		},
	}
}

func TestResolveConcreteScenario(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	day := func(hour, min int) time.Time {
		return time.Date(2026, 8, 20, hour, min, 0, 0, eastern)
	}

	// Shortly after midnight the first row is playing and the second row
	// bounds its interval.
	got, err := Resolve(Request{Time: day(0, 2)}, tassoRows(), DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Title != "Tasso, Lament and Triumph" {
		t.Errorf("Title = %q", got.Title)
	}
	if !got.StartTime.Equal(day(0, 1)) {
		t.Errorf("StartTime = %s, want %s", got.StartTime, day(0, 1))
	}
	if !got.EndTime.Equal(day(6, 0)) {
		t.Errorf("EndTime = %s, want %s", got.EndTime, day(6, 0))
	}

	// After the last row the entry runs until the station end of day.
	got, err = Resolve(Request{Time: day(6, 1)}, tassoRows(), DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Title != "Concerto Grosso in D, Op. 6 No. 5" {
		t.Errorf("Title = %q", got.Title)
	}
	if !got.EndTime.Equal(EndOfDay(day(6, 1), eastern)) {
		t.Errorf("EndTime = %s, want station end of day", got.EndTime)
	}

	// The containment invariant holds on both sides.
	req := day(6, 1)
	if req.Before(got.StartTime) || req.After(got.EndTime) {
		t.Errorf("request %s outside [%s, %s]", req, got.StartTime, got.EndTime)
	}
}

func TestResolveBoundaryMatchesRowAtItsStart(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	req := Request{Time: time.Date(2026, 8, 20, 6, 0, 0, 0, eastern)}

	got, err := Resolve(req, tassoRows(), DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Composer != "Handel" {
		t.Errorf("a request equal to a row start must match that row, got composer %q", got.Composer)
	}
}

func TestResolveCarriesProgramForward(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	rows := []Row{
		{StartTimeRaw: "6:00am", Fields: map[Field]string{
			FieldProgram: "Sleepers, Awake!",
			FieldTitle:   "Morning Fanfare",
		}},
		{StartTimeRaw: "6:24am", Fields: map[Field]string{
			FieldProgram: "",
			FieldTitle:   "Flute Quartet in C",
		}},
		{StartTimeRaw: "7:03am", Fields: map[Field]string{
			FieldTitle: "Symphony No. 39",
		}},
	}
	req := Request{Time: time.Date(2026, 8, 20, 7, 30, 0, 0, eastern)}

	got, err := Resolve(req, rows, DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Program != "Sleepers, Awake!" {
		t.Errorf("Program = %q, want the value carried from the first row", got.Program)
	}
	if got.Title != "Symphony No. 39" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestResolveSkipsSpringForwardGapRow(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	rows := []Row{
		{StartTimeRaw: "1:45", Fields: map[Field]string{FieldTitle: "Nocturne"}},
		{StartTimeRaw: "2:30", Fields: map[Field]string{FieldTitle: "Never Aired"}},
		{StartTimeRaw: "3:15", Fields: map[Field]string{FieldTitle: "Aubade"}},
	}

	// 2:30 does not exist on 2026-03-08, so the row before the gap runs
	// until the next valid row.
	req := Request{Time: time.Date(2026, 3, 8, 3, 10, 0, 0, eastern)}
	got, err := Resolve(req, rows, DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Title != "Nocturne" {
		t.Errorf("Title = %q, want %q", got.Title, "Nocturne")
	}
	if !got.EndTime.Equal(time.Date(2026, 3, 8, 3, 15, 0, 0, eastern)) {
		t.Errorf("EndTime = %s, want 3:15", got.EndTime)
	}

	req = Request{Time: time.Date(2026, 3, 8, 3, 30, 0, 0, eastern)}
	got, err = Resolve(req, rows, DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Title != "Aubade" {
		t.Errorf("Title = %q, want %q", got.Title, "Aubade")
	}
}

func TestResolveMissingFieldYieldsSentinel(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	rows := []Row{
		{StartTimeRaw: "9:00", Fields: map[Field]string{
			FieldComposer: " Mozart ",
			FieldTitle:    "Requiem",
		}},
	}
	req := Request{Time: time.Date(2026, 8, 20, 9, 30, 0, 0, eastern)}

	got, err := Resolve(req, rows, DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.RecordLabel != Missing {
		t.Errorf("RecordLabel = %q, want %q", got.RecordLabel, Missing)
	}
	if got.Performers != Missing {
		t.Errorf("Performers = %q, want %q", got.Performers, Missing)
	}
	if got.Composer != "Mozart" {
		t.Errorf("Composer = %q, want trimmed %q", got.Composer, "Mozart")
	}
}

func TestResolveNoEntryBeforeFirstRow(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	rows := []Row{
		{StartTimeRaw: "6:00am", Fields: map[Field]string{FieldTitle: "Morning Fanfare"}},
	}
	req := Request{Time: time.Date(2026, 8, 20, 5, 0, 0, 0, eastern)}

	if _, err := Resolve(req, rows, DefaultSchedule(), eastern); !errors.Is(err, ErrNoEntry) {
		t.Errorf("Resolve error = %v, want ErrNoEntry", err)
	}
}

func TestResolveFailsOnUnparseableTime(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	rows := []Row{
		{StartTimeRaw: "6:00am", Fields: map[Field]string{FieldTitle: "Morning Fanfare"}},
		{StartTimeRaw: "25:99", Fields: map[Field]string{FieldTitle: "Broken"}},
	}
	req := Request{Time: time.Date(2026, 8, 20, 7, 0, 0, 0, eastern)}

	if _, err := Resolve(req, rows, DefaultSchedule(), eastern); !errors.Is(err, ErrBadTime) {
		t.Errorf("Resolve error = %v, want ErrBadTime", err)
	}
}

func TestResolveUnescapesFields(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	rows := []Row{
		{StartTimeRaw: "10:00", Fields: map[Field]string{
			FieldComposer:   "  Dvo&#345;&#225;k ",
			FieldTitle:      "Songs My Mother Taught Me &amp; Other Favorites",
			FieldPerformers: "Tr&iacute;o Lorca",
		}},
	}
	req := Request{Time: time.Date(2026, 8, 20, 10, 30, 0, 0, eastern)}

	got, err := Resolve(req, rows, DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Composer != "Dvořák" {
		t.Errorf("Composer = %q, want %q", got.Composer, "Dvořák")
	}
	if got.Title != "Songs My Mother Taught Me & Other Favorites" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Performers != "Trío Lorca" {
		t.Errorf("Performers = %q", got.Performers)
	}
}

func TestResolveProgramFromSchedule(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	// Rows without a program column, as on the current site layout.
	rows := []Row{
		{StartTimeRaw: "6:30am", Fields: map[Field]string{FieldTitle: "Morning Fanfare"}},
	}
	req := Request{Time: time.Date(2026, 8, 20, 7, 0, 0, 0, eastern)}

	got, err := Resolve(req, rows, DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Program != "Sleepers, Awake!" {
		t.Errorf("Program = %q, want the schedule-derived name", got.Program)
	}

	// Without a schedule the program falls back to the sentinel.
	got, err = Resolve(req, rows, nil, eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Program != Missing {
		t.Errorf("Program = %q, want %q", got.Program, Missing)
	}
}

func TestResolveIsPure(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")
	req := Request{Time: time.Date(2026, 8, 20, 6, 30, 0, 0, eastern)}
	rows := tassoRows()

	first, err := Resolve(req, rows, DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	second, err := Resolve(req, rows, DefaultSchedule(), eastern)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Resolve is not deterministic: %+v vs %+v", first, second)
	}
}
