package classical

import (
	"fmt"
	"time"
)

// weekdayTokens renders weekdays the way the legacy page names expect,
// indexed by time.Weekday.
var weekdayTokens = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// cardsPageKey is the fetch key of the current site: the request's calendar
// day in station time. A request near midnight can land on a different day
// than the caller's clock shows, so the station timezone decides.
func (c *Client) cardsPageKey(t time.Time) string {
	return t.In(c.location).Format("2006-01-02")
}

// tablePageKey is the fetch key of the legacy site: the lowercase
// three-letter weekday in station time.
func (c *Client) tablePageKey(t time.Time) string {
	return weekdayTokens[t.In(c.location).Weekday()]
}

func (c *Client) cardsPlaylistURL(key string) string {
	// The trailing slash before the query matters: the bare path answers
	// with a permanent redirect.
	return fmt.Sprintf("%s/playlists/?date=%s", c.config.BaseURL, key)
}

func (c *Client) tablePlaylistURL(key string) string {
	return fmt.Sprintf("%s/playing_%s.shtml", c.config.BaseURL, key)
}
