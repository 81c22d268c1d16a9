package cache

// Stats is a point-in-time snapshot of the cache's lifetime counters.
// The counters only ever go up: Clear empties the cache but leaves them
// alone. They are observational; the eviction algorithm never reads them.
type Stats struct {
	Hits    uint64 // Get found the key
	Misses  uint64 // Get did not find the key
	Updates uint64 // Put replaced the value of an existing key
	Bounces uint64 // Put evicted the oldest entry to make room
}

// Stats returns a snapshot of the counters. Reading them has no side
// effects.
func (kv *LRUCache) Stats() Stats {
	return Stats{
		Hits:    kv.hits,
		Misses:  kv.misses,
		Updates: kv.updates,
		Bounces: kv.bounces,
	}
}
