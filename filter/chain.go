package filter

import (
	"sync"

	"github.com/philipp01105/bitlog/core"
)

// Chain is an ordered list of filters combined with AND. It is safe for
// concurrent use.
type Chain struct {
	mu      sync.RWMutex
	filters []Filter
}

// NewChain creates a chain holding filters in order.
func NewChain(filters ...Filter) *Chain {
	c := &Chain{}
	for _, f := range filters {
		c.Add(f)
	}
	return c
}

// Add appends f. Nil filters are ignored.
func (c *Chain) Add(f Filter) {
	if f == nil {
		return
	}
	c.mu.Lock()
	c.filters = append(c.filters, f)
	c.mu.Unlock()
}

// Remove deletes every filter called name. Unknown names are ignored.
func (c *Chain) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.filters[:0:0]
	for _, f := range c.filters {
		if f.Name() != name {
			kept = append(kept, f)
		}
	}
	c.filters = kept
}

// RemoveAll empties the chain.
func (c *Chain) RemoveAll() {
	c.mu.Lock()
	c.filters = nil
	c.mu.Unlock()
}

// Filters returns a copy of the chain.
func (c *Chain) Filters() []Filter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// Len returns the number of filters.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.filters)
}

// ShouldInclude asks each filter in order and stops at the first
// rejection. An empty chain includes everything.
func (c *Chain) ShouldInclude(msg core.Message, level core.Level) bool {
	c.mu.RLock()
	filters := c.filters
	c.mu.RUnlock()

	for _, f := range filters {
		if !f.ShouldInclude(msg, level) {
			return false
		}
	}
	return true
}
