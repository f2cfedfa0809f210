package sprintf

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes parsed templates keyed by their source text. Lookups of
// templates already in the cache take no lock; concurrent first-time
// parses of the same template are collapsed into one. Templates that fail
// to parse are not cached.
//
// The zero value is ready to use. A Cache must not be copied after first use.
type Cache struct {
	entries sync.Map // string -> *Template
	group   singleflight.Group
	size    atomic.Int64
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{} }

// Parse returns the cached template for s, parsing and storing it on a miss.
func (c *Cache) Parse(s string) (*Template, error) {
	if t, ok := c.entries.Load(s); ok {
		return t.(*Template), nil
	}
	v, err, _ := c.group.Do(s, func() (any, error) {
		if t, ok := c.entries.Load(s); ok {
			return t, nil
		}
		t, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if _, loaded := c.entries.LoadOrStore(s, t); !loaded {
			c.size.Add(1)
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Template), nil
}

// Format renders s with values, reusing a cached parse when available.
func (c *Cache) Format(s string, values ...Value) (string, error) {
	t, err := c.Parse(s)
	if err != nil {
		return "", err
	}
	return t.Format(values...)
}

// Len returns the number of cached templates.
func (c *Cache) Len() int { return int(c.size.Load()) }

// Reset drops every cached template.
func (c *Cache) Reset() {
	c.entries.Range(func(k, _ any) bool {
		if _, ok := c.entries.LoadAndDelete(k); ok {
			c.size.Add(-1)
		}
		return true
	})
}
