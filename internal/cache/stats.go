package cache

// Stats holds cache effectiveness counters.
//
//   - Hits:      Get found the key
//   - Misses:    Get did not find the key
//   - Evictions: Set dropped the LRU entry to make room
//
// Peek and Contains are not counted. Clear resets all counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRatio returns Hits / (Hits + Misses), or 0 before any Get.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}
