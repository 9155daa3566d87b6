// internal/cache/lru.go
//
// Small LRU with per-entry TTL, used by the content client to hold decoded
// API responses.  No external deps; good for a few thousand entries.
//
// The cache is a value the caller owns and injects.  Keys are a caller
// chosen comparable type so different resources cannot collide on a bare
// string.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// TTL is a least-recently-used cache whose entries also expire.  Safe for
// concurrent use.
type TTL[K comparable, V any] struct {
	mu   sync.Mutex
	cap  int
	ttl  time.Duration
	ll   *list.List
	dict map[K]*list.Element
	now  func() time.Time
}

type entry[K comparable, V any] struct {
	key     K
	val     V
	expires time.Time
}

// New returns a TTL cache with the given capacity and lifetime.  Panics on
// capacity < 1 or ttl <= 0.
func New[K comparable, V any](capacity int, ttl time.Duration) *TTL[K, V] {
	if capacity < 1 {
		panic("cache: capacity must be ≥1")
	}
	if ttl <= 0 {
		panic("cache: ttl must be positive")
	}
	return &TTL[K, V]{
		cap:  capacity,
		ttl:  ttl,
		ll:   list.New(),
		dict: make(map[K]*list.Element, capacity),
		now:  time.Now,
	}
}

// Get retrieves a live value and marks it MRU.  Expired entries are
// dropped and reported as a miss.
func (c *TTL[K, V]) Get(key K) (val V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, hit := c.dict[key]
	if !hit {
		return val, false
	}
	ent := ele.Value.(*entry[K, V])
	if c.now().After(ent.expires) {
		c.ll.Remove(ele)
		delete(c.dict, key)
		return val, false
	}
	c.ll.MoveToFront(ele)
	return ent.val, true
}

// Add inserts or updates a value and restarts its TTL.
func (c *TTL[K, V]) Add(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)
	if ele, hit := c.dict[key]; hit {
		ent := ele.Value.(*entry[K, V])
		ent.val, ent.expires = val, expires
		c.ll.MoveToFront(ele)
		return
	}
	ele := c.ll.PushFront(&entry[K, V]{key: key, val: val, expires: expires})
	c.dict[key] = ele
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		c.ll.Remove(last)
		delete(c.dict, last.Value.(*entry[K, V]).key)
	}
}

// Purge drops every entry.
func (c *TTL[K, V]) Purge() {
	c.mu.Lock()
	c.ll.Init()
	c.dict = make(map[K]*list.Element, c.cap)
	c.mu.Unlock()
}

// Len reports current size, expired entries included until they are read.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
