package main

import (
	"flag"
	"fmt"
	"log"

	"limitedmap/internal/cache"
)

func main() {
	capacity := flag.Int("capacity", 3, "maximum number of entries kept in the cache")
	flag.Parse()

	c, err := cache.New[string, string](cache.Config{MaxEntries: *capacity})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}

	log.Println("limitedmap demo starting")
	log.Printf("config: maxEntries=%d", c.Cap())

	// -------------------------------------------------------------------
	// 1) Fill the cache; each insert becomes MRU.
	// -------------------------------------------------------------------
	for _, kv := range [][2]string{{"one", "1"}, {"two", "2"}, {"three", "3"}} {
		c.Set(kv[0], kv[1])
		log.Printf("SET %s=%s -> [%s]", kv[0], kv[1], c)
	}

	// -------------------------------------------------------------------
	// 2) Reads count as use: touching the LRU entry moves it to the head.
	// -------------------------------------------------------------------
	if v, ok := c.Get("one"); ok {
		log.Printf("GET one = %q (touches one -> MRU) -> [%s]", v, c)
	}

	// -------------------------------------------------------------------
	// 3) Overflow evicts whatever is now at the tail.
	// -------------------------------------------------------------------
	if evicted := c.Set("four", "4"); evicted {
		log.Printf("SET four=4 evicted the LRU entry -> [%s]", c)
	}
	for _, k := range []string{"one", "two", "three", "four"} {
		if _, ok := c.Peek(k); !ok {
			log.Printf("PEEK %s: missing", k)
		}
	}

	// -------------------------------------------------------------------
	// 4) Delete is a no-op for missing keys; Clear empties everything.
	// -------------------------------------------------------------------
	log.Printf("DELETE three: %v, again: %v -> [%s]", c.Delete("three"), c.Delete("three"), c)

	s := c.Stats()
	log.Printf("stats: hits=%d misses=%d evictions=%d len=%d", s.Hits, s.Misses, s.Evictions, c.Len())

	c.Clear()
	log.Printf("after clear: len=%d rendering=%q", c.Len(), c.String())

	fmt.Println("Done.")
}
