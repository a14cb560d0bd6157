package wcpe

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Resolve scans rows in page order and returns the entry whose broadcast
// interval contains req.Time. The end of that interval is the next row's
// start time, or the station end-of-day when the matched row is the last
// one. Rows whose start time falls into the spring-forward DST gap are
// skipped; a row start equal to req.Time matches that row.
func Resolve(req Request, rows []Row, sched *Schedule, loc *time.Location) (*ResolvedEntry, error) {
	logger := zap.L()

	var (
		prev      *Row
		prevStart time.Time
		program   string
		endTime   time.Time
	)
	for i := range rows {
		row := &rows[i]
		start, err := ParseStationTime(req.Time, loc, row.StartTimeRaw)
		if err != nil {
			if errors.Is(err, ErrTimeGap) {
				// The slot never aired on this day; drop the row and move on.
				logger.Sugar().Debugf("Skipping the playlist row with start time %q. Error: %v", row.StartTimeRaw, err)
				continue
			}
			return nil, err
		}

		if start.After(req.Time) {
			endTime = start
			break
		}

		prev = row
		prevStart = start
		// The site stamps the program name only on the row where the
		// program changes; carry it forward across blank cells.
		if p, ok := row.Fields[FieldProgram]; ok && strings.TrimSpace(p) != "" {
			program = p
		}
	}

	if prev == nil {
		return nil, ErrNoEntry
	}
	if endTime.IsZero() {
		endTime = EndOfDay(req.Time, loc)
	}

	if strings.TrimSpace(program) != "" {
		program = cleanText(program)
	} else if sched != nil {
		program = sched.ProgramFor(prevStart)
	} else {
		program = Missing
	}

	return &ResolvedEntry{
		Program:     program,
		StartTime:   prevStart,
		EndTime:     endTime,
		Composer:    prev.Field(FieldComposer),
		Title:       prev.Field(FieldTitle),
		Performers:  prev.Field(FieldPerformers),
		RecordLabel: prev.Field(FieldRecordLabel),
	}, nil
}
