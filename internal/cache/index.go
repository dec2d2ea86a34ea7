package cache

// index maps a key to the arena slot holding its node.
//
// It never owns nodes; the recency list does. Every slot stored here must be
// linked in the list, and the node's key must equal the map key.
type index[K comparable] struct {
	slots map[K]int
}

func newIndex[K comparable](hint int) index[K] {
	return index[K]{slots: make(map[K]int, hint)}
}

func (ix *index[K]) put(key K, slot int) {
	ix.slots[key] = slot
}

func (ix *index[K]) lookup(key K) (int, bool) {
	slot, ok := ix.slots[key]
	return slot, ok
}

func (ix *index[K]) erase(key K) {
	delete(ix.slots, key)
}

func (ix *index[K]) len() int {
	return len(ix.slots)
}

func (ix *index[K]) reset() {
	clear(ix.slots)
}
