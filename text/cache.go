package text

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
)

// cache is a thread-safe map with a soft size limit. When it grows past the
// limit, the least recently used quarter of the entries is evicted.
type cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // monotonic access counter
}

type cacheEntry[V any] struct {
	value V
	atime int64
}

func newCache[K comparable, V any](softLimit int) *cache[K, V] {
	return &cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// getOrCreate returns the cached value for key or stores the result of create.
// create runs under the lock, so concurrent callers never build the same
// value twice.
func (c *cache[K, V]) getOrCreate(key K, create func() V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value, true
	}

	v := create()
	c.entries[key] = &cacheEntry[V]{value: v, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return v, false
}

func (c *cache[K, V]) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

func (c *cache[K, V]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest shrinks the cache to three quarters of the soft limit.
// Caller must hold c.mu.
func (c *cache[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.atime, b.atime) })
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}

// DefaultShapeCacheSize is the soft entry limit used by NewCachedShaper
// when given a limit of zero or less.
const DefaultShapeCacheSize = 1024

// shapeKey identifies a shaped run. Everything that changes the output of
// a Shaper is part of the key.
type shapeKey struct {
	text      string
	source    *FontSource
	size      float64
	direction Direction
	hinting   Hinting
	language  string
}

// CachedShaper memoizes another Shaper. Repeatedly drawn labels are
// shaped once per font, size and direction.
//
// The returned glyph slices are shared between callers and must not be
// modified. CachedShaper is safe for concurrent use if the wrapped
// Shaper is.
type CachedShaper struct {
	shaper Shaper
	runs   *cache[shapeKey, []ShapedGlyph]

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedShaper wraps s, or BuiltinShaper when s is nil.
func NewCachedShaper(s Shaper, limit int) *CachedShaper {
	if s == nil {
		s = &BuiltinShaper{}
	}
	if limit <= 0 {
		limit = DefaultShapeCacheSize
	}
	return &CachedShaper{
		shaper: s,
		runs:   newCache[shapeKey, []ShapedGlyph](limit),
	}
}

// Shape implements the Shaper interface.
func (c *CachedShaper) Shape(text string, face *Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}
	key := shapeKey{
		text:      text,
		source:    face.source,
		size:      face.size,
		direction: face.config.direction,
		hinting:   face.config.hinting,
		language:  face.config.language,
	}
	glyphs, hit := c.runs.getOrCreate(key, func() []ShapedGlyph {
		return c.shaper.Shape(text, face)
	})

	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return glyphs
}

// Stats returns the number of cache hits and misses so far.
func (c *CachedShaper) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached runs.
func (c *CachedShaper) Len() int { return c.runs.size() }

// Clear drops every cached run. Call it after closing a FontSource the
// shaper has seen.
func (c *CachedShaper) Clear() { c.runs.reset() }
