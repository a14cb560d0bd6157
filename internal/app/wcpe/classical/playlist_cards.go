package classical

import (
	"fmt"

	"wowcpe/internal/app/wcpe"

	"github.com/PuerkitoBio/goquery"
)

// cardFieldClasses maps the per-entry element classes of the current site to
// metadata fields. The cards carry no program name; the schedule table
// supplies it during resolution.
var cardFieldClasses = map[string]wcpe.Field{
	"playlist-entry__composer":   wcpe.FieldComposer,
	"playlist-entry__title":      wcpe.FieldTitle,
	"playlist-entry__performers": wcpe.FieldPerformers,
	"playlist-entry__label":      wcpe.FieldRecordLabel,
}

// parseCardsPlaylist reads the date-keyed card list used by the current site.
func parseCardsPlaylist(doc *goquery.Document) ([]wcpe.Row, error) {
	entries := doc.Find("div.playlist-entry")
	if entries.Length() == 0 {
		return nil, fmt.Errorf("%w: no playlist entries in the document", errLayoutNotFound)
	}

	rows := make([]wcpe.Row, 0, entries.Length())
	entries.Each(func(_ int, entry *goquery.Selection) {
		row := wcpe.Row{
			StartTimeRaw: entry.Find(".playlist-entry__time").First().Text(),
			Fields:       make(map[wcpe.Field]string, len(cardFieldClasses)),
		}
		for class, field := range cardFieldClasses {
			if cell := entry.Find("." + class); cell.Length() > 0 {
				row.Fields[field] = cell.First().Text()
			}
		}
		rows = append(rows, row)
	})
	return rows, nil
}
