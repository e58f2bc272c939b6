// Package cache is a size-bounded LRU with per-entry TTL used for order reads.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const janitorInterval = 2 * time.Minute

var lookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "checkout_service",
	Subsystem: "cache",
	Name:      "lookups_total",
	Help:      "Cache lookups by result (hit, miss, expired).",
}, []string{"result"})

var evictions = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "checkout_service",
	Subsystem: "cache",
	Name:      "evictions_total",
	Help:      "Entries dropped because the cache was full.",
})

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List
	items    map[string]*list.Element
	now      func() time.Time
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		lookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	ent := el.Value.(*entry)
	if !c.now().Before(ent.expiresAt) {
		c.remove(el)
		lookups.WithLabelValues("expired").Inc()
		return nil, false
	}

	c.order.MoveToFront(el)
	lookups.WithLabelValues("hit").Inc()
	return ent.value, true
}

// Set stores value and refreshes its TTL. The least recently used entry is
// dropped when capacity is exceeded.
func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value, ent.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})

	for c.order.Len() > c.capacity {
		c.remove(c.order.Back())
		evictions.Inc()
	}
}

// Delete drops key so the next read goes to the store.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
}

func (c *LRUCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	clear(c.items)
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start launches the janitor and returns. It satisfies app.Starter.
func (c *LRUCache) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.removeExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache) removeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if !now.Before(el.Value.(*entry).expiresAt) {
			c.remove(el)
			removed++
		}
		el = prev
	}
	return removed
}

func (c *LRUCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
