package posts

import (
	"log"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry represents one account's cached post snapshot with expiration
type cacheEntry struct {
	posts     []Post
	expiresAt time.Time
}

// Cache is an in-memory, token-keyed cache of post listings.
// It is bounded two ways: entries expire after a fixed TTL, and the LRU
// holds at most capacity distinct tokens, evicting the least recently
// used entry when a new token would exceed it.
//
// The cache is process-wide shared state: one instance is constructed at
// startup and handed to the post service. All operations are safe under
// concurrent use.
type Cache struct {
	entries *lru.Cache[string, cacheEntry]
	ttl     time.Duration
	logger  *slog.Logger
}

// NewCache creates a post cache with the given capacity bound and entry TTL
func NewCache(capacity int, ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := lru.New[string, cacheEntry](capacity)
	if err != nil {
		// Only happens with a non-positive capacity. Fall back to a single
		// slot rather than returning nil and making every caller check.
		log.Printf("WARNING: invalid post cache capacity %d, falling back to 1: %v", capacity, err)
		entries, _ = lru.New[string, cacheEntry](1)
	}

	return &Cache{
		entries: entries,
		ttl:     ttl,
		logger:  logger,
	}
}

// Get returns the cached snapshot for token if present and fresh.
// An expired entry is removed and reported as a miss, so dead entries
// never hold a capacity slot.
func (c *Cache) Get(token string) ([]Post, bool) {
	entry, ok := c.entries.Get(token)
	if !ok {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.entries.Remove(token)
		c.logger.Debug("post cache entry expired", "post_count", len(entry.posts))
		return nil, false
	}

	return entry.posts, true
}

// Put inserts or replaces the snapshot for token with a fresh TTL.
// The stored slice is never mutated afterwards, only replaced or evicted.
func (c *Cache) Put(token string, snapshot []Post) {
	expiresAt := time.Now().Add(c.ttl)

	c.entries.Add(token, cacheEntry{
		posts:     snapshot,
		expiresAt: expiresAt,
	})

	c.logger.Debug("post cache updated",
		"post_count", len(snapshot),
		"expires_at", expiresAt)
}

// Invalidate removes the entry for token, a no-op when absent.
// The write path does not call this (see postService); it exists for
// deployments that decide to trade the read latency win for coherence.
func (c *Cache) Invalidate(token string) {
	c.entries.Remove(token)
}

// Len returns the number of resident entries, expired or not
func (c *Cache) Len() int {
	return c.entries.Len()
}
