package cache

import (
	"errors"
	"fmt"
)

// Config controls cache capacity.
//
// MaxEntries must be at least 1; New rejects anything smaller instead of
// clamping it.
type Config struct {
	MaxEntries int
}

// Cache is a fixed-capacity key–value map with least-recently-used eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a doubly-linked list maintains recency ordering.
//
// Ownership model:
// The recency list owns every node (in its arena). The index only stores slot
// numbers, and every removal updates both before returning.
//
// Cache is not safe for concurrent use. Guard it externally, or use Locked.
type Cache[K comparable, V any] struct {
	maxEntries int

	items index[K]
	lru   recencyList[K, V] // head = most recently used (MRU), tail = least recently used (LRU)

	stats Stats
}

// ErrInvalidCapacity is returned (wrapped) by New when Config.MaxEntries < 1.
var ErrInvalidCapacity = errors.New("cache capacity must be at least 1")

// initialCapacityLimit caps the up-front allocation for large caches.
// Small caches are sized exactly so the map never rehashes.
const initialCapacityLimit = 256

// New constructs an empty cache.
//
// It returns ErrInvalidCapacity (wrapped) when cfg.MaxEntries < 1.
func New[K comparable, V any](cfg Config) (*Cache[K, V], error) {
	if cfg.MaxEntries < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, cfg.MaxEntries)
	}

	hint := min(cfg.MaxEntries, initialCapacityLimit)

	return &Cache[K, V]{
		maxEntries: cfg.MaxEntries,
		items:      newIndex[K](hint),
		lru:        newRecencyList[K, V](hint),
	}, nil
}

// Set writes/overwrites a key and makes it the most recently used entry.
//
// Overwriting an existing key never evicts. Adding a new key to a full cache
// first evicts the least recently used entry; the return value reports whether
// that happened.
//
// Complexity: O(1) expected.
func (c *Cache[K, V]) Set(key K, value V) (evicted bool) {
	if slot, ok := c.items.lookup(key); ok {
		c.lru.at(slot).value = value

		// Updating counts as use; move to MRU.
		c.lru.moveToHead(slot)
		return false
	}

	if c.items.len() >= c.maxEntries {
		evicted = c.evictOldest()
	}

	slot := c.lru.alloc(key, value)
	c.items.put(key, slot)
	c.lru.moveToHead(slot)
	return evicted
}

// Get reads a key.
//
// A hit promotes the entry to most recently used, so Get mutates the cache
// even though it looks like a read. A miss leaves the cache unchanged and
// returns the zero value.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	slot, ok := c.items.lookup(key)
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}

	c.lru.moveToHead(slot)
	c.stats.Hits++
	return c.lru.at(slot).value, true
}

// Peek reads a key without touching recency or stats.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	slot, ok := c.items.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return c.lru.at(slot).value, true
}

// Contains reports whether key is stored, without touching recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items.lookup(key)
	return ok
}

// Delete removes a key if present and reports whether it was.
// Deleting a missing key is a no-op.
func (c *Cache[K, V]) Delete(key K) bool {
	slot, ok := c.items.lookup(key)
	if !ok {
		return false
	}
	c.lru.unlink(slot)
	c.removeSlot(slot)
	return true
}

// Clear removes every entry and resets stats.
// The cache is left exactly as New returned it.
func (c *Cache[K, V]) Clear() {
	c.lru.reset()
	c.items.reset()
	c.stats = Stats{}
}

// Len returns the number of currently stored entries.
func (c *Cache[K, V]) Len() int {
	return c.items.len()
}

// Cap returns the configured maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.maxEntries
}

// Keys returns keys in MRU -> LRU order.
//
// Keys and Values walk the same list, so called back to back without a
// mutation in between, Keys()[i] is the key of Values()[i].
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.lru.len)
	for slot := c.lru.head; slot != nilIndex; slot = c.lru.at(slot).next {
		out = append(out, c.lru.at(slot).key)
	}
	return out
}

// Values returns values in MRU -> LRU order.
func (c *Cache[K, V]) Values() []V {
	out := make([]V, 0, c.lru.len)
	for slot := c.lru.head; slot != nilIndex; slot = c.lru.at(slot).next {
		out = append(out, c.lru.at(slot).value)
	}
	return out
}

// String renders entries MRU -> LRU as "key:value" pairs joined by commas.
//
// This is a debug helper; the format is not a stable contract.
func (c *Cache[K, V]) String() string {
	return c.lru.String()
}

func (c *Cache[K, V]) evictOldest() bool {
	slot, ok := c.lru.removeLast()
	if !ok {
		return false
	}
	c.removeSlot(slot)
	c.stats.Evictions++
	return true
}

// removeSlot erases the index entry of an already unlinked node and frees its slot.
func (c *Cache[K, V]) removeSlot(slot int) {
	c.items.erase(c.lru.at(slot).key)
	c.lru.release(slot)
}
