package cache

// cache/cache.go

import (
	"container/list"
	"errors"
	"os"

	"github.com/frasnian/lrucache/internal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidCapacity is returned by New when capacity is less than one.
var ErrInvalidCapacity = errors.New("cache capacity must be at least 1")

// ErrEmpty is returned by Front and Back when the cache holds no entries.
var ErrEmpty = errors.New("cache is empty")

// internal node stored in the recency list
type entry struct {
	key   interface{}
	value interface{}
}

// Entry is a read-only view of a cached key/value pair. It is a copy;
// changing it has no effect on the cache.
type Entry struct {
	Key   interface{}
	Value interface{}
}

// LRUCache is a fixed-capacity key/value store that evicts the
// least-recently-used entry when a new key is inserted at full capacity.
//
// It is NOT safe for concurrent use. Get reorders entries, so even
// "read-only" traffic mutates the cache; callers sharing one cache across
// goroutines must wrap every call in their own lock, or keep one cache
// per shard.
type LRUCache struct {
	lookup   map[interface{}]*list.Element
	deque    *list.List // front = most recently used, back = eviction candidate
	capacity int
	logger   *zap.SugaredLogger

	// stats/perf. lifetime counters, never reset by Clear.
	hits    uint64 // Get()
	misses  uint64 // Get()
	updates uint64 // Put() - replaced value for existing key
	bounces uint64 // Put() - caused LRU entry to be bounced
}

// constructor. capacity must be >= 1; anything lower is rejected with
// ErrInvalidCapacity rather than silently clamped.
func New(capacity int) (*LRUCache, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	logFile, _ := os.OpenFile("lrucache.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)

	// using uber's zap logger library
	// 1. Encoder config: controls what appears in each log entry
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "time", // Include time in every log
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder, // Format: 2025-04-12T18:30:00Z
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// 2. Build the logger with console output
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(logFile),
		// to print to terminal use os.Stdout
		zap.DebugLevel,
	)
	logger := zap.New(core).Sugar()

	return &LRUCache{
		lookup:   make(map[interface{}]*list.Element, capacity),
		deque:    list.New(),
		capacity: capacity,
		logger:   logger,
	}, nil
}

// MustNew is New for fixed literal capacities; it panics if capacity is
// less than one.
func MustNew(capacity int) *LRUCache {
	kv, err := New(capacity)
	if err != nil {
		panic(err)
	}
	return kv
}

// flush all logs. The cache stays usable after Close.
func (kv *LRUCache) Close() {
	_ = kv.logger.Sync() // flush logs
}

// Get returns the value stored under key and marks the entry as
// most-recently-used. A miss returns (nil, false) and bumps the miss
// counter; nothing else changes.
func (kv *LRUCache) Get(key interface{}) (interface{}, bool) {
	// validate key first
	if err := internal.ValidateKey(key); err != nil {
		kv.logger.Debugw("Invalid key rejected", "key", key)
		return nil, false
	}

	elem, ok := kv.lookup[key]
	if !ok {
		kv.misses++
		kv.logger.Debugw("Cache miss", "key", key)
		return nil, false
	}

	kv.hits++

	// update deque ordering; the map keeps pointing at the same element
	kv.deque.MoveToFront(elem)

	kv.logger.Debugw("Moved entry to front of LRU",
		"key", key,
	)
	return elem.Value.(*entry).value, true
}

// Peek returns the value stored under key without touching the recency
// order or the hit/miss counters. Use it to look without perturbing
// eviction.
func (kv *LRUCache) Peek(key interface{}) (interface{}, bool) {
	// validate key first
	if err := internal.ValidateKey(key); err != nil {
		kv.logger.Debugw("Invalid key rejected", "key", key)
		return nil, false
	}

	elem, ok := kv.lookup[key]
	if !ok {
		return nil, false
	}
	return elem.Value.(*entry).value, true
}

// Put stores value under key and marks it most-recently-used. If the key
// already exists its value is replaced in place. If the key is new and the
// cache is full, the least-recently-used entry is bounced first. Reports
// whether an existing key was replaced.
//
// After Put the key is always present and at the front, and
// Len() <= Cap() always holds.
func (kv *LRUCache) Put(key interface{}, value interface{}) bool {
	// validate key first
	if err := internal.ValidateKey(key); err != nil {
		kv.logger.Debugw("Invalid key rejected", "key", key)
		return false
	}

	if elem, ok := kv.lookup[key]; ok {
		// it exists, replace existing value
		elem.Value.(*entry).value = value
		kv.deque.MoveToFront(elem)
		kv.updates++

		kv.logger.Debugw("Replaced value and moved entry to front of LRU",
			"key", key,
		)
		return true
	}

	// reached capacity for deque, bounce the oldest entry first
	if kv.deque.Len() >= kv.capacity {

		// right end of deque
		back := kv.deque.Back()
		if back != nil {

			evicted := back.Value.(*entry)
			delete(kv.lookup, evicted.key)
			kv.deque.Remove(back)
			kv.bounces++

			kv.logger.Debugw("Deleted entry due to capacity",
				"key", evicted.key,
			)
		}
	}

	elem := kv.deque.PushFront(&entry{
		key:   key,
		value: value,
	})
	kv.lookup[key] = elem

	kv.logger.Debugw("Moved entry to front of LRU",
		"key", key,
	)
	return false
}

// Contains reports whether key is cached, via the index only. No recency
// change, no counter change.
func (kv *LRUCache) Contains(key interface{}) bool {
	if err := internal.ValidateKey(key); err != nil {
		return false
	}
	_, ok := kv.lookup[key]
	return ok
}

// Clear removes every entry from both the recency list and the index.
// The hit/miss/update/bounce counters are lifetime counters and are NOT
// reset.
func (kv *LRUCache) Clear() {
	kv.deque.Init()
	kv.lookup = make(map[interface{}]*list.Element, kv.capacity)

	kv.logger.Debugw("Cleared cache")
}

// Len returns the number of entries currently cached.
func (kv *LRUCache) Len() int {
	return kv.deque.Len()
}

// Cap returns the fixed capacity set at construction.
func (kv *LRUCache) Cap() int {
	return kv.capacity
}

// Empty reports whether the cache holds no entries.
func (kv *LRUCache) Empty() bool {
	return kv.deque.Len() == 0
}

// Keys returns the cached keys ordered most-recently-used first.
func (kv *LRUCache) Keys() []interface{} {
	out := make([]interface{}, 0, kv.deque.Len())
	for elem := kv.deque.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(*entry).key)
	}
	return out
}

// Entries returns copies of the cached key/value pairs ordered
// most-recently-used first. Inspection only; building the slice does not
// touch recency order or counters.
func (kv *LRUCache) Entries() []Entry {
	out := make([]Entry, 0, kv.deque.Len())
	for elem := kv.deque.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry)
		out = append(out, Entry{Key: e.key, Value: e.value})
	}
	return out
}

// Front returns a view of the most-recently-used entry, or ErrEmpty.
func (kv *LRUCache) Front() (Entry, error) {
	elem := kv.deque.Front()
	if elem == nil {
		return Entry{}, ErrEmpty
	}
	e := elem.Value.(*entry)
	return Entry{Key: e.key, Value: e.value}, nil
}

// Back returns a view of the least-recently-used entry (the next eviction
// candidate), or ErrEmpty.
func (kv *LRUCache) Back() (Entry, error) {
	elem := kv.deque.Back()
	if elem == nil {
		return Entry{}, ErrEmpty
	}
	e := elem.Value.(*entry)
	return Entry{Key: e.key, Value: e.value}, nil
}
