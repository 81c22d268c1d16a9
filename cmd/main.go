package main

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/frasnian/lrucache/cache"
)

func main() {

	c := cache.MustNew(8)
	defer c.Close()

	// push twice the capacity so the oldest users get bounced
	for i := 0; i < 16; i++ {
		c.Put(gofakeit.Username(), gofakeit.Email())
	}

	// re-read a couple of survivors to shuffle the recency order
	keys := c.Keys()
	if len(keys) > 3 {
		keys = keys[:3]
	}
	for _, key := range keys {
		c.Get(key)
	}

	fmt.Println("cached, most recent first:")
	for _, e := range c.Entries() {
		fmt.Printf("  %v => %v\n", e.Key, e.Value)
	}

	st := c.Stats()
	fmt.Printf("size=%d/%d hits=%d misses=%d updates=%d bounces=%d\n",
		c.Len(), c.Cap(), st.Hits, st.Misses, st.Updates, st.Bounces)
}
