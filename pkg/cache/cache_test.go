package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestCache(capacity int, ttl time.Duration) (*LRUCache, *clock) {
	clk := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache(capacity, ttl)
	c.now = clk.now
	return c, clk
}

func TestLRUCache(t *testing.T) {
	testCases := []struct {
		name    string
		actions func(t *testing.T, c *LRUCache, clk *clock)
	}{
		{
			name: "get within ttl",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(time.Minute - time.Second)
				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, []byte("1"), v)
			},
		},
		{
			name: "expired on get",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(time.Minute)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Zero(t, c.Size())
			},
		},
		{
			name: "set refreshes ttl and value",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(50 * time.Second)
				c.Set("a", []byte("2"))
				clk.advance(50 * time.Second)
				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, []byte("2"), v)
			},
		},
		{
			name: "evicts least recently used",
			actions: func(t *testing.T, c *LRUCache, _ *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok)
				_, ok = c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 2, c.Size())
			},
		},
		{
			name: "delete",
			actions: func(t *testing.T, c *LRUCache, _ *clock) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name: "purge",
			actions: func(t *testing.T, c *LRUCache, _ *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Purge()
				assert.Zero(t, c.Size())
				c.Set("c", []byte("3"))
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name: "janitor pass removes only expired",
			actions: func(t *testing.T, c *LRUCache, clk *clock) {
				c.Set("old", []byte("1"))
				clk.advance(30 * time.Second)
				c.Set("new", []byte("2"))
				clk.advance(45 * time.Second)

				assert.Equal(t, 1, c.removeExpired())
				_, ok := c.Get("new")
				assert.True(t, ok)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, clk := newTestCache(2, time.Minute)
			tc.actions(t, c, clk)
		})
	}
}

func TestLRUCache_Concurrent(t *testing.T) {
	c, _ := newTestCache(16, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("order-%d", i%20)
			c.Set(key, []byte(key))
			c.Get(key)
			if i%5 == 0 {
				c.Delete(key)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Size(), 16)
}

func TestLRUCache_StartStopsWithContext(t *testing.T) {
	c, _ := newTestCache(1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Start(ctx))
	cancel()
}
