package cache

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	list "github.com/bahlo/generic-list-go"
)

type modelEntry struct {
	key   int
	value int
}

// modelLRU is a straightforward pointer-based LRU used as a reference.
type modelLRU struct {
	cap   int
	ll    *list.List[modelEntry]
	items map[int]*list.Element[modelEntry]
}

func newModelLRU(capacity int) *modelLRU {
	return &modelLRU{
		cap:   capacity,
		ll:    list.New[modelEntry](),
		items: make(map[int]*list.Element[modelEntry]),
	}
}

func (m *modelLRU) set(key, value int) bool {
	if el, ok := m.items[key]; ok {
		el.Value.value = value
		m.ll.MoveToFront(el)
		return false
	}
	evicted := false
	if m.ll.Len() >= m.cap {
		oldest := m.ll.Remove(m.ll.Back())
		delete(m.items, oldest.key)
		evicted = true
	}
	m.items[key] = m.ll.PushFront(modelEntry{key: key, value: value})
	return evicted
}

func (m *modelLRU) get(key int) (int, bool) {
	el, ok := m.items[key]
	if !ok {
		return 0, false
	}
	m.ll.MoveToFront(el)
	return el.Value.value, true
}

func (m *modelLRU) delete(key int) bool {
	el, ok := m.items[key]
	if !ok {
		return false
	}
	m.ll.Remove(el)
	delete(m.items, key)
	return true
}

func (m *modelLRU) clear() {
	m.ll.Init()
	clear(m.items)
}

func (m *modelLRU) String() string {
	var parts []string
	for el := m.ll.Front(); el != nil; el = el.Next() {
		parts = append(parts, fmt.Sprintf("%d:%d", el.Value.key, el.Value.value))
	}
	return strings.Join(parts, ",")
}

func TestCache_MatchesReferenceModel(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 8, 32} {
		t.Run(fmt.Sprintf("cap=%d", capacity), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(capacity)))

			c, err := New[int, int](Config{MaxEntries: capacity})
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			m := newModelLRU(capacity)

			keySpace := capacity * 2
			for i := 0; i < 5000; i++ {
				key := rng.Intn(keySpace)

				switch op := rng.Intn(100); {
				case op < 45:
					if got, want := c.Set(key, i), m.set(key, i); got != want {
						t.Fatalf("step %d: set(%d) evicted=%v, model %v", i, key, got, want)
					}
				case op < 85:
					gotV, gotOK := c.Get(key)
					wantV, wantOK := m.get(key)
					if gotV != wantV || gotOK != wantOK {
						t.Fatalf("step %d: get(%d) = %d,%v, model %d,%v", i, key, gotV, gotOK, wantV, wantOK)
					}
				case op < 99:
					if got, want := c.Delete(key), m.delete(key); got != want {
						t.Fatalf("step %d: delete(%d) = %v, model %v", i, key, got, want)
					}
				default:
					c.Clear()
					m.clear()
				}

				if got, want := c.String(), m.String(); got != want {
					t.Fatalf("step %d: rendering\n got  %s\n want %s", i, got, want)
				}
				if c.Len() != m.ll.Len() {
					t.Fatalf("step %d: len %d, model %d", i, c.Len(), m.ll.Len())
				}
				checkInvariants(t, c)
			}
		})
	}
}
