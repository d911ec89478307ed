package pagination

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of page layouts kept when no size is configured.
const DefaultCacheSize = 512

// Cache memoises Paginate results per document and policy. It is safe for
// concurrent use. Cached pages are shared between callers and must be treated
// as read-only; ResultFromPages copies the page it returns.
type Cache struct {
	layouts *lru.Cache[string, []Page]
}

// NewCache creates a cache holding at most size page layouts.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	layouts, err := lru.New[string, []Page](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}
	return &Cache{layouts: layouts}, nil
}

// Paginate returns the cached layout for the document key and policy,
// computing and storing it on a miss. The document key must change whenever
// the paragraphs change.
func (c *Cache) Paginate(documentKey string, paragraphs []string, policy Policy) []Page {
	key := documentKey + "|" + policy.Key()
	if pages, ok := c.layouts.Get(key); ok {
		return pages
	}
	pages := Paginate(paragraphs, policy)
	c.layouts.Add(key, pages)
	return pages
}

// Purge drops every cached layout.
func (c *Cache) Purge() {
	c.layouts.Purge()
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	return c.layouts.Len()
}
