package wcpe

import (
	"context"
)

// Client looks up the playlist entry that is (or was) airing at a given time.
type Client interface {
	// Lookup resolves the single playlist entry whose broadcast interval
	// contains the request time.
	Lookup(ctx context.Context, req Request) (*ResolvedEntry, error)
}
