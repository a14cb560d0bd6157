package classical

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wowcpe/internal/app/wcpe"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Lookup resolves the playlist entry airing at the requested time. The
// availability window is checked before anything is fetched.
func (c *Client) Lookup(ctx context.Context, req wcpe.Request) (*wcpe.ResolvedEntry, error) {
	if err := wcpe.ValidateAvailability(req.Time, c.now(), c.location, c.window); err != nil {
		return nil, err
	}

	rows, err := c.getPlaylistRows(ctx, req.Time)
	if err != nil {
		return nil, err
	}

	return wcpe.Resolve(req, rows, c.schedule, c.location)
}

// getPlaylistRows fetches and parses the playlist page holding the given
// day, using the pinned page layout.
func (c *Client) getPlaylistRows(ctx context.Context, day time.Time) ([]wcpe.Row, error) {
	switch c.loadPageLayout() {
	case pageLayoutCards:
		rows, err := c.getCardsPlaylistRows(ctx, day)
		return rows, pinnedLayoutErr(err)
	case pageLayoutTable:
		rows, err := c.getTablePlaylistRows(ctx, day)
		return rows, pinnedLayoutErr(err)
	default:
		// Probe the known page layouts automatically.
		return c.getPlaylistRowsByAuto(ctx, day)
	}
}

// pinnedLayoutErr translates the internal layout probe signal into the public
// parse failure. With the layout pinned there is no further probe to drive,
// so a missing playlist container means the page could not be used.
func pinnedLayoutErr(err error) error {
	if errors.Is(err, errLayoutNotFound) {
		return fmt.Errorf("%w: %v", wcpe.ErrParsePlaylist, err)
	}
	return err
}

// getPlaylistRowsByAuto probes the known page layouts in order and pins the
// first one that answers, so later lookups skip the probing. Concurrent
// probes may pin the same layout twice, which is harmless.
func (c *Client) getPlaylistRowsByAuto(ctx context.Context, day time.Time) ([]wcpe.Row, error) {
	rows, err := c.getCardsPlaylistRows(ctx, day)
	if err == nil {
		c.logger.Info("An available playlist page layout was found.", zap.String("pageLayout", pageLayoutCards))
		c.pageLayout.Store(pageLayoutCards)
		return rows, nil
	} else if !errors.Is(err, errLayoutNotFound) {
		return nil, err
	}

	rows, err = c.getTablePlaylistRows(ctx, day)
	if err == nil {
		c.logger.Info("An available playlist page layout was found.", zap.String("pageLayout", pageLayoutTable))
		c.pageLayout.Store(pageLayoutTable)
		return rows, nil
	} else if !errors.Is(err, errLayoutNotFound) {
		return nil, err
	}

	return nil, fmt.Errorf("%w: no known page layout matched", wcpe.ErrParsePlaylist)
}

func (c *Client) getCardsPlaylistRows(ctx context.Context, day time.Time) ([]wcpe.Row, error) {
	key := c.cardsPageKey(day)
	data, err := c.loadPage(ctx, key, c.cardsPlaylistURL(key))
	if err != nil {
		return nil, err
	}

	doc, err := newDocument(data)
	if err != nil {
		return nil, err
	}
	return parseCardsPlaylist(doc)
}

func (c *Client) getTablePlaylistRows(ctx context.Context, day time.Time) ([]wcpe.Row, error) {
	key := c.tablePageKey(day)
	data, err := c.loadPage(ctx, key, c.tablePlaylistURL(key))
	if err != nil {
		return nil, err
	}

	doc, err := newDocument(data)
	if err != nil {
		return nil, err
	}
	return parseTablePlaylist(doc)
}

func newDocument(data []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decodePage(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wcpe.ErrParsePlaylist, err)
	}
	return doc, nil
}
