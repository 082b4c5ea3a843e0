package internal

import (
	"container/list"
	"sync"

	"go.uber.org/zap"
)

// CacheStats tracks template cache performance
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Clears    int64
	Entries   int
	Capacity  int
}

// TemplateCache is a bounded least-recently-used cache from pattern to
// compiled template. It is safe for concurrent use.
type TemplateCache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	entries  map[string]*list.Element
	stats    CacheStats
	logger   *zap.Logger
}

type cacheEntry struct {
	pattern string
	tmpl    *Template
}

// NewTemplateCache creates a cache holding at most capacity templates.
// A capacity below one falls back to DefaultCacheSize.
func NewTemplateCache(capacity int, logger *zap.Logger) *TemplateCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if capacity < 1 {
		capacity = DefaultCacheSize
	}
	logger.Debug(LogMsgCacheCreated, zap.Int(LogFieldCapacity, capacity))
	return &TemplateCache{
		capacity: capacity,
		ll:       list.New(),
		entries:  make(map[string]*list.Element, capacity),
		logger:   logger,
	}
}

// Get returns the template cached for pattern and marks it most recently used
func (c *TemplateCache) Get(pattern string) (*Template, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[pattern]; ok {
		c.ll.MoveToFront(el)
		c.stats.Hits++
		return el.Value.(*cacheEntry).tmpl, true
	}
	c.stats.Misses++
	return nil, false
}

// Add inserts or replaces the template for pattern, evicting the least
// recently used entry when the cache is over capacity
func (c *TemplateCache) Add(pattern string, tmpl *Template) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[pattern]; ok {
		el.Value.(*cacheEntry).tmpl = tmpl
		c.ll.MoveToFront(el)
		return
	}

	c.entries[pattern] = c.ll.PushFront(&cacheEntry{pattern: pattern, tmpl: tmpl})
	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		c.ll.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).pattern)
		c.stats.Evictions++
		c.logger.Debug(LogMsgCacheEvicted, zap.Int(LogFieldEntries, c.ll.Len()))
	}
}

// Clear removes every entry
func (c *TemplateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.entries = make(map[string]*list.Element, c.capacity)
	c.stats.Clears++
	c.logger.Debug(LogMsgCacheCleared)
}

// Len returns the number of cached templates
func (c *TemplateCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Stats returns a snapshot of the cache statistics
func (c *TemplateCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Entries = c.ll.Len()
	s.Capacity = c.capacity
	return s
}
