package pagecache

import (
	"os"
	"path/filepath"
	"time"
)

// Cache is an on-disk cache of fetched pages, one file per fetch key. A
// fixed TTL keeps a cached page from outliving the day or window it was
// fetched for.
type Cache struct {
	dir string
	ttl time.Duration
}

// New opens a cache rooted at dir, creating the directory when needed.
// A non-positive ttl means entries never expire.
func New(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Get returns the cached page for key, or reports a miss when the entry is
// absent, expired, or unreadable.
func (c *Cache) Get(key string) ([]byte, bool) {
	fPath := c.entryPath(key)

	info, err := os.Stat(fPath)
	if err != nil {
		return nil, false
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores the page for key, replacing any previous entry.
func (c *Cache) Put(key string, data []byte) error {
	return os.WriteFile(c.entryPath(key), data, 0o644)
}

func (c *Cache) entryPath(key string) string {
	return filepath.Join(c.dir, key+".html")
}
