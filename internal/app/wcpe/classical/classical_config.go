package classical

import (
	"fmt"
	"strings"
)

const defaultBaseURL = "https://theclassicalstation.org"

const (
	pageLayoutCards = "cards" // date-keyed card list, the current site
	pageLayoutTable = "table" // weekday-keyed table, the legacy site
)

type Config struct {
	BaseURL    string `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`       // station site base URL; empty selects the public site
	PageLayout string `json:"pageLayout,omitempty" yaml:"pageLayout,omitempty"` // playlist page layout, cards or table; empty selects automatically
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	switch c.PageLayout {
	case "", pageLayoutCards, pageLayoutTable:
	default:
		return fmt.Errorf("unknown page layout %q, expected %q or %q", c.PageLayout, pageLayoutCards, pageLayoutTable)
	}
	return nil
}
