package classical

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodePage turns raw page bytes into text. The current site serves UTF-8;
// the legacy pages declare Windows-1252. Undecodable bytes become the
// Unicode replacement character, never a failed lookup.
func decodePage(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		return string(decoded)
	}
	return string(data)
}
