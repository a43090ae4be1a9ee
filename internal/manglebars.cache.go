package internal

import (
	"sync"

	"go.uber.org/zap"
)

// BodyCache holds compiled node lists for operator bodies, keyed by body text
// and the offset the body starts at. Compiled nodes carry absolute positions,
// so identical text at two places in a template is cached twice.
// Entries are evicted oldest-first once MaxEntries is reached.
type BodyCache struct {
	mu         sync.Mutex
	entries    map[bodyKey][]Node
	evictList  []bodyKey
	maxEntries int
	stats      BodyCacheStats
	logger     *zap.Logger
}

type bodyKey struct {
	body   string
	offset int
}

// BodyCacheStats tracks cache performance metrics.
type BodyCacheStats struct {
	Hits       int64
	Misses     int64
	Evictions  int64
	EntryCount int
}

// NewBodyCache creates a cache bounded to maxEntries compiled bodies.
// Returns nil when maxEntries is not positive; a nil cache never stores anything.
func NewBodyCache(maxEntries int, logger *zap.Logger) *BodyCache {
	if maxEntries <= 0 {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BodyCache{
		entries:    make(map[bodyKey][]Node),
		evictList:  make([]bodyKey, 0, maxEntries),
		maxEntries: maxEntries,
		logger:     logger,
	}
}

// Get returns the compiled node list for body starting at pos, if cached.
func (c *BodyCache) Get(body string, pos Position) ([]Node, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	nodes, ok := c.entries[bodyKey{body: body, offset: pos.Offset}]
	if !ok {
		c.stats.Misses++
		c.logger.Debug(LogMsgBodyCacheMiss, zap.Int(LogFieldBody, len(body)))
		return nil, false
	}
	c.stats.Hits++
	c.logger.Debug(LogMsgBodyCacheHit, zap.Int(LogFieldBody, len(body)))
	return nodes, true
}

// Set stores the compiled node list for body starting at pos.
func (c *BodyCache) Set(body string, pos Position, nodes []Node) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := bodyKey{body: body, offset: pos.Offset}
	if _, exists := c.entries[key]; exists {
		c.entries[key] = nodes
		return
	}
	if len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}
	c.entries[key] = nodes
	c.evictList = append(c.evictList, key)
	c.stats.EntryCount = len(c.entries)
}

// Clear removes all entries from the cache.
func (c *BodyCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[bodyKey][]Node)
	c.evictList = make([]bodyKey, 0, c.maxEntries)
	c.stats.EntryCount = 0
}

// Stats returns current cache statistics.
func (c *BodyCache) Stats() BodyCacheStats {
	if c == nil {
		return BodyCacheStats{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// evictOldest removes the oldest entry. Caller holds the lock.
func (c *BodyCache) evictOldest() {
	if len(c.evictList) == 0 {
		return
	}

	oldest := c.evictList[0]
	c.evictList = c.evictList[1:]
	if _, exists := c.entries[oldest]; exists {
		delete(c.entries, oldest)
		c.stats.Evictions++
		c.logger.Debug(LogMsgBodyCacheEvicted, zap.Int(LogFieldBody, len(oldest.body)))
	}
}
