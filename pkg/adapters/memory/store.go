package memory

import (
	"context"
	"sync"

	"github.com/aretw0/numeral/pkg/domain"
)

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	data     map[string]domain.Result
	order    []string // insertion order, oldest first
	capacity int
	mu       sync.RWMutex
}

// NewCache creates a new in-memory cache.
// A capacity of zero or less means unbounded; otherwise the oldest entry is evicted first.
func NewCache(capacity int) *Cache {
	return &Cache{
		data:     make(map[string]domain.Result),
		capacity: capacity,
	}
}

// Get returns the cached result for input.
func (c *Cache) Get(ctx context.Context, input string) (domain.Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.data[input]
	if !ok {
		return domain.Result{}, domain.ErrCacheMiss
	}
	return res, nil
}

// Set stores the result, evicting the oldest entry when full.
func (c *Cache) Set(ctx context.Context, input string, result domain.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[input]; !exists {
		if c.capacity > 0 && len(c.data) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.data, oldest)
		}
		c.order = append(c.order, input)
	}
	c.data[input] = result
	return nil
}

// Delete removes the entry for input.
func (c *Cache) Delete(ctx context.Context, input string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[input]; !ok {
		return nil
	}
	delete(c.data, input)
	for i, k := range c.order {
		if k == input {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
