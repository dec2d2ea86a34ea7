package cache

import "sync"

// Locked guards a Cache with a single RWMutex so goroutines can share it.
//
// Get promotes the entry it finds, which is a write, so it takes the exclusive
// lock like Set, Delete and Clear. Only calls that leave recency and stats
// untouched use the read lock.
type Locked[K comparable, V any] struct {
	mu sync.RWMutex
	c  *Cache[K, V]
}

// NewLocked constructs a cache and wraps it. Errors are the same as New.
func NewLocked[K comparable, V any](cfg Config) (*Locked[K, V], error) {
	c, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	return &Locked[K, V]{c: c}, nil
}

// Set is Cache.Set under the exclusive lock.
func (l *Locked[K, V]) Set(key K, value V) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Set(key, value)
}

// Get is Cache.Get under the exclusive lock, since a hit promotes the entry.
func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Get(key)
}

// Delete is Cache.Delete under the exclusive lock.
func (l *Locked[K, V]) Delete(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Delete(key)
}

// Clear is Cache.Clear under the exclusive lock.
func (l *Locked[K, V]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Clear()
}

// Peek is Cache.Peek under the read lock.
func (l *Locked[K, V]) Peek(key K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.Peek(key)
}

// Contains is Cache.Contains under the read lock.
func (l *Locked[K, V]) Contains(key K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.Contains(key)
}

// Len is Cache.Len under the read lock.
func (l *Locked[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.Len()
}

// Cap needs no lock; capacity never changes after New.
func (l *Locked[K, V]) Cap() int {
	return l.c.Cap()
}

// Keys is Cache.Keys under the read lock.
func (l *Locked[K, V]) Keys() []K {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.Keys()
}

// Values is Cache.Values under the read lock.
func (l *Locked[K, V]) Values() []V {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.Values()
}

// Stats is Cache.Stats under the read lock.
func (l *Locked[K, V]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.Stats()
}

// String is Cache.String under the read lock.
func (l *Locked[K, V]) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.c.String()
}
