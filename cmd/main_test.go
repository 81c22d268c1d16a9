package main

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/frasnian/lrucache/cache"
)

func TestPutAndGet(t *testing.T) {
	c := cache.MustNew(2)
	defer c.Close()

	c.Put("a", 1)
	c.Put("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Expected 'a' to be 1, got %v", v)
	}

	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Expected 'b' to be 2, got %v", v)
	}
}

func TestLRUEviction(t *testing.T) {
	c := cache.MustNew(2)
	defer c.Close()

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")    // Access 'a' → now 'b' is LRU
	c.Put("c", 3) // Evicts 'b'

	if c.Contains("b") {
		t.Error("Expected 'b' to be evicted")
	}

	if _, ok := c.Get("a"); !ok {
		t.Error("Expected 'a' to still be present")
	}

	if _, ok := c.Get("c"); !ok {
		t.Error("Expected 'c' to be present")
	}
}

func TestChurnStaysBounded(t *testing.T) {
	c := cache.MustNew(16)
	defer c.Close()

	// random traffic the way the demo drives it
	for i := 0; i < 500; i++ {
		c.Put(fmt.Sprintf("user-%d", i%40), gofakeit.Email())
		c.Get(fmt.Sprintf("user-%d", gofakeit.Number(0, 39)))

		if c.Len() > c.Cap() {
			t.Fatalf("Expected size to stay within capacity, got %d/%d", c.Len(), c.Cap())
		}
	}

	st := c.Stats()
	if st.Bounces == 0 {
		t.Error("Expected churn past capacity to bounce entries")
	}
}
