package classical

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"wowcpe/internal/app/wcpe"
	"wowcpe/internal/pkg/pagecache"

	"go.uber.org/zap"
)

// errLayoutNotFound reports that a fetched page does not hold the probed
// playlist layout. It drives the layout auto-detection and is never
// surfaced to callers.
var errLayoutNotFound = errors.New("playlist page layout not found")

type Client struct {
	httpClient *http.Client      // HTTP client used for page fetches
	config     *Config           // station site configuration
	location   *time.Location    // station broadcast timezone
	window     time.Duration     // trailing availability window
	headers    map[string]string // custom HTTP request headers
	cache      *pagecache.Cache  // optional on-disk page cache
	schedule   *wcpe.Schedule    // weekly program grid

	// The playlist page layout, empty until pinned. Concurrent lookups on
	// an unpinned client may race to pin it, so access stays atomic.
	pageLayout atomic.Value

	now func() time.Time

	logger *zap.Logger
}

var _ wcpe.Client = (*Client)(nil)

func NewClient(httpClient *http.Client, config *Config, loc *time.Location, window time.Duration, headers map[string]string, cache *pagecache.Cache) (wcpe.Client, error) {
	// The config must be present and sound.
	if config == nil {
		return nil, fmt.Errorf("client config is nil")
	} else if err := config.Validate(); err != nil {
		return nil, err
	}

	if loc == nil {
		return nil, fmt.Errorf("station location is nil")
	} else if window <= 0 {
		return nil, fmt.Errorf("availability window must be positive")
	}

	c := Client{
		httpClient: httpClient,
		config:     config,
		location:   loc,
		window:     window,
		headers:    headers,
		cache:      cache,
		schedule:   wcpe.DefaultSchedule(),
		now:        time.Now,
		logger:     zap.L(),
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	c.pageLayout.Store(config.PageLayout)
	return &c, nil
}

// loadPageLayout returns the pinned page layout, or empty when none is
// pinned yet.
func (c *Client) loadPageLayout() string {
	layout, _ := c.pageLayout.Load().(string)
	return layout
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Safari/537.36")
	// Custom headers override the defaults.
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}

// loadPage returns the page behind url, consulting the cache first when one
// is configured. Cache write failures are logged and ignored.
func (c *Client) loadPage(ctx context.Context, key, url string) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(key); ok {
			return data, nil
		}
	}

	data, err := c.fetchPlaylistPage(ctx, url)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Put(key, data); err != nil {
			c.logger.Sugar().Warnf("Failed to cache the playlist page %s. Error: %v", key, err)
		}
	}
	return data, nil
}

func (c *Client) fetchPlaylistPage(ctx context.Context, url string) ([]byte, error) {
	// Build the request.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	// Set the request headers.
	c.setCommonHeaders(req)

	// Execute the request.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &wcpe.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// The legacy weekday pages are gone from the current site, and the
		// legacy site knows nothing of the date query. A 404 therefore
		// marks the wrong layout rather than a dead site.
		return nil, fmt.Errorf("%w: http status code: %d", errLayoutNotFound, resp.StatusCode)
	} else if resp.StatusCode != http.StatusOK {
		return nil, &wcpe.TransportError{URL: url, Err: fmt.Errorf("http status code: %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &wcpe.TransportError{URL: url, Err: err}
	}
	return data, nil
}
