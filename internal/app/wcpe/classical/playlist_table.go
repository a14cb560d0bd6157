package classical

import (
	"fmt"
	"strings"

	"wowcpe/internal/app/wcpe"

	"github.com/PuerkitoBio/goquery"
)

const tableHeaderStartTime = "Start Time"

// tableHeaderFields maps legacy header labels to metadata fields. The
// "Perfomers" spelling is the site's own.
var tableHeaderFields = map[string]wcpe.Field{
	"Program":      wcpe.FieldProgram,
	"Composer":     wcpe.FieldComposer,
	"Title":        wcpe.FieldTitle,
	"Perfomers":    wcpe.FieldPerformers,
	"Performers":   wcpe.FieldPerformers,
	"Record Label": wcpe.FieldRecordLabel,
}

// requiredTableFields must all appear in a header row for a table to count
// as the playlist table.
var requiredTableFields = []wcpe.Field{
	wcpe.FieldProgram,
	wcpe.FieldComposer,
	wcpe.FieldTitle,
	wcpe.FieldPerformers,
}

// parseTablePlaylist reads the weekday-keyed table used by the legacy site,
// recognized among the page's tables by its header labels.
func parseTablePlaylist(doc *goquery.Document) ([]wcpe.Row, error) {
	var rows []wcpe.Row
	found := false

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		trs := table.Find("tr")
		if trs.Length() == 0 {
			return true
		}

		// Map column positions to fields using the header row.
		timeCol := -1
		columns := make(map[int]wcpe.Field)
		trs.First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
			label := strings.TrimSpace(cell.Text())
			if label == tableHeaderStartTime {
				timeCol = i
				return
			}
			if field, ok := tableHeaderFields[label]; ok {
				columns[i] = field
			}
		})
		if timeCol < 0 {
			return true
		}
		for _, field := range requiredTableFields {
			if !columnsContain(columns, field) {
				return true
			}
		}

		found = true
		rows = make([]wcpe.Row, 0, trs.Length()-1)
		trs.Slice(1, trs.Length()).Each(func(_ int, tr *goquery.Selection) {
			row := wcpe.Row{Fields: make(map[wcpe.Field]string, len(columns))}
			tr.Find("th, td").Each(func(i int, cell *goquery.Selection) {
				if i == timeCol {
					row.StartTimeRaw = cell.Text()
					return
				}
				if field, ok := columns[i]; ok {
					row.Fields[field] = cell.Text()
				}
			})
			// Spacer rows appear between program blocks.
			if strings.TrimSpace(row.StartTimeRaw) == "" && !rowHasText(row.Fields) {
				return
			}
			rows = append(rows, row)
		})
		return false
	})

	if !found {
		return nil, fmt.Errorf("%w: no playlist table in the document", errLayoutNotFound)
	}
	return rows, nil
}

func columnsContain(columns map[int]wcpe.Field, field wcpe.Field) bool {
	for _, f := range columns {
		if f == field {
			return true
		}
	}
	return false
}

func rowHasText(fields map[wcpe.Field]string) bool {
	for _, v := range fields {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
