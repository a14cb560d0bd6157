package wcpe

import (
	"html"
	"strings"
	"time"
)

// Missing is reported for a metadata field the playlist page did not carry.
// Absent metadata is common on the station site and is never an error.
const Missing = "<missing>"

// Field identifies one metadata column of a playlist entry.
type Field int

const (
	FieldProgram Field = iota
	FieldComposer
	FieldTitle
	FieldPerformers
	FieldRecordLabel
)

func (f Field) String() string {
	switch f {
	case FieldProgram:
		return "Program"
	case FieldComposer:
		return "Composer"
	case FieldTitle:
		return "Title"
	case FieldPerformers:
		return "Performers"
	case FieldRecordLabel:
		return "Record Label"
	default:
		return "Unknown"
	}
}

// Request is a single point-in-time query. The time carries the caller's
// timezone; conversion to station time happens inside the lookup.
type Request struct {
	Time time.Time `json:"time"`
}

// Row is one playlist entry as it appears on the page, in page order.
// Values keep whatever the page delivered: surrounding whitespace and
// residual HTML entity escapes survive until resolution.
type Row struct {
	StartTimeRaw string           // raw start time text, e.g. "12:01am" or "23:59"
	Fields       map[Field]string // raw metadata cells keyed by field
}

// Field returns the cleaned text of a metadata cell, or Missing when the
// page had no such cell for this row.
func (r *Row) Field(f Field) string {
	raw, ok := r.Fields[f]
	if !ok {
		return Missing
	}
	return cleanText(raw)
}

// ResolvedEntry is the result of a successful lookup. StartTime and EndTime
// bound the broadcast interval containing the request time, end inclusive.
type ResolvedEntry struct {
	Program     string    `json:"program"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Composer    string    `json:"composer"`
	Title       string    `json:"title"`
	Performers  string    `json:"performers"`
	RecordLabel string    `json:"record_label"`
}

// cleanText trims surrounding whitespace and resolves HTML entity escapes.
// The station site double-escapes some names, so one level of escaping can
// still be present in parsed text.
func cleanText(s string) string {
	return html.UnescapeString(strings.TrimSpace(s))
}
