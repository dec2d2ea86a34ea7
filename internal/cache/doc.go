// Package cache implements a fixed-capacity, in-memory key–value map that
// evicts the least-recently-used entry when it is full.
//
// Goals for this package:
//   - Make the core data structures explicit (map index + doubly-linked recency list)
//   - Provide O(1) Set/Get/Delete and O(1) eviction from the list tail
//   - Keep list nodes in an arena addressed by slot index, so the index never holds pointers
//   - Stay single-threaded; wrap with Locked when goroutines share a cache
package cache
