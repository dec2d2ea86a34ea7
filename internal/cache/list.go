package cache

import (
	"fmt"
	"strings"
)

// nilIndex marks a missing link: no predecessor, no successor, or an empty list.
const nilIndex = -1

// node is one entry of the recency list.
// prev and next are arena slots rather than pointers.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// recencyList is a doubly-linked list of nodes ordered by recency.
// Head = most recently used (MRU), tail = least recently used (LRU).
//
// The list owns node storage: nodes live in a slice and are addressed by slot.
// Released slots go on a free list and are handed out again by alloc, so the
// arena never grows beyond the peak number of live entries.
type recencyList[K comparable, V any] struct {
	nodes []node[K, V]
	free  []int

	head int
	tail int
	len  int
}

func newRecencyList[K comparable, V any](hint int) recencyList[K, V] {
	return recencyList[K, V]{
		nodes: make([]node[K, V], 0, hint),
		head:  nilIndex,
		tail:  nilIndex,
	}
}

// alloc stores a detached node and returns its slot.
func (l *recencyList[K, V]) alloc(key K, value V) int {
	n := node[K, V]{key: key, value: value, prev: nilIndex, next: nilIndex}

	if last := len(l.free) - 1; last >= 0 {
		slot := l.free[last]
		l.free = l.free[:last]
		l.nodes[slot] = n
		return slot
	}

	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1
}

// release returns a detached slot to the free list.
// The node is zeroed so the arena doesn't keep the key or value reachable.
func (l *recencyList[K, V]) release(slot int) {
	l.nodes[slot] = node[K, V]{prev: nilIndex, next: nilIndex}
	l.free = append(l.free, slot)
}

func (l *recencyList[K, V]) at(slot int) *node[K, V] {
	return &l.nodes[slot]
}

// moveToHead links a detached node at the head, or moves a linked node there.
func (l *recencyList[K, V]) moveToHead(slot int) {
	n := &l.nodes[slot]

	if l.head == nilIndex {
		n.prev, n.next = nilIndex, nilIndex
		l.head, l.tail = slot, slot
		l.len++
		return
	}

	if l.head == slot {
		return
	}

	if n.prev != nilIndex || n.next != nilIndex {
		l.unlink(slot)
	}

	n.prev = nilIndex
	n.next = l.head
	l.nodes[l.head].prev = slot
	l.head = slot
	l.len++
}

// unlink detaches a node from any position: sole element, head, tail or interior.
func (l *recencyList[K, V]) unlink(slot int) {
	n := &l.nodes[slot]

	if n.prev != nilIndex {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nilIndex {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev, n.next = nilIndex, nilIndex
	l.len--
}

// removeLast unlinks the tail and returns its slot.
// The caller still owns the slot and must erase its index entry and release it.
func (l *recencyList[K, V]) removeLast() (int, bool) {
	if l.tail == nilIndex {
		return nilIndex, false
	}
	slot := l.tail
	l.unlink(slot)
	return slot, true
}

// reset drops every node. O(n) because the arena is zeroed.
func (l *recencyList[K, V]) reset() {
	clear(l.nodes)
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.head, l.tail = nilIndex, nilIndex
	l.len = 0
}

// String renders the list head to tail as "key:value" pairs joined by commas.
func (l *recencyList[K, V]) String() string {
	var b strings.Builder
	for slot := l.head; slot != nilIndex; slot = l.nodes[slot].next {
		n := &l.nodes[slot]
		fmt.Fprintf(&b, "%v:%v", n.key, n.value)
		if n.next != nilIndex {
			b.WriteByte(',')
		}
	}
	return b.String()
}
