package wcpe

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the requested time is outside the window for
	// which the station publishes playlists.
	ErrUnavailable = errors.New("playlists for the requested time are not available")
	// ErrParsePlaylist means the fetched page held no recognizable playlist.
	ErrParsePlaylist = errors.New("failed to parse the playlist page")
	// ErrNoEntry means the page parsed fine but no row precedes the
	// requested time.
	ErrNoEntry = errors.New("no playlist entry covers the requested time")
	// ErrBadTime means a time string did not match the expected grammar.
	ErrBadTime = errors.New("failed to parse the time")
	// ErrTimeGap marks a wall-clock time that does not exist on the given
	// day (the spring-forward DST gap). Rows carrying such a time are
	// skipped during resolution, never surfaced as a lookup failure.
	ErrTimeGap = errors.New("the time does not exist on this day")
)

// TransportError wraps a network or HTTP failure while fetching a playlist
// page, keeping the underlying cause available for errors.Is/As.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
