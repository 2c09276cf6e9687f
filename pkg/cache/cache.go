package cache

import (
	"sync"

	"github.com/avelasco/productos-client/internal/model"
)

// ListCache is the caller-owned local mirror of the remote product
// collection. It is never the source of truth: entries change only when the
// synchronization layer confirms a remote success. All methods are safe for
// concurrent use; completions from in-flight requests may land in any order.
type ListCache struct {
	mu       sync.RWMutex
	products []model.Product
}

func NewListCache() *ListCache {
	return &ListCache{}
}

// Replace swaps the whole list for the server's sequence, preserving order.
func (c *ListCache) Replace(products []model.Product) {
	cloned := make([]model.Product, 0, len(products))
	for _, p := range products {
		cloned = append(cloned, p.Clone())
	}
	c.mu.Lock()
	c.products = cloned
	c.mu.Unlock()
}

// Append adds a newly created record to the end of the list.
func (c *ListCache) Append(p model.Product) {
	c.mu.Lock()
	c.products = append(c.products, p.Clone())
	c.mu.Unlock()
}

// Patch replaces the entry with p's id. Returns false when no entry matches;
// ids are unique so at most one entry is touched.
func (c *ListCache) Patch(p model.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p.Clone()
			return true
		}
	}
	return false
}

// Remove drops the entry with the given id. Returns false when absent.
func (c *ListCache) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a copy of the entry with the given id.
func (c *ListCache) Get(id int64) (model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].ID == id {
			return c.products[i].Clone(), true
		}
	}
	return model.Product{}, false
}

// Snapshot returns a deep copy of the current list.
func (c *ListCache) Snapshot() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Clone())
	}
	return out
}

func (c *ListCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
