package summary

import "sync"

// Factory produces summary groups on demand.
type Factory func() ([]Group, error)

// Cache computes a Factory's groups at most once and serves the stored
// result afterwards. An error is stored like a result. A Cache has no
// invalidation; summarize different data with a new Cache.
//
// Cache is safe for concurrent use; concurrent first calls to Get run the
// factory once.
type Cache struct {
	mu      sync.Mutex
	compute Factory

	computed bool
	groups   []Group
	err      error
}

// NewCache wraps compute in a Cache.
func NewCache(compute Factory) *Cache {
	return &Cache{compute: compute}
}

// Get returns the cached groups, computing them on the first call.
func (c *Cache) Get() ([]Group, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.computed {
		c.groups, c.err = c.compute()
		c.computed = true
		c.compute = nil
	}

	return c.groups, c.err
}

// Computed reports whether Get has already run the factory.
func (c *Cache) Computed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.computed
}

// Factory returns c.Get as a Factory.
func (c *Cache) Factory() Factory {
	return c.Get
}

// Combine returns a Factory that concatenates the groups of factories in
// order. The combined factory neither caches nor precomputes; wrap the
// inputs in a Cache where needed. The first error stops the concatenation.
func Combine(factories ...Factory) Factory {
	return func() ([]Group, error) {
		var out []Group
		for _, f := range factories {
			groups, err := f()
			if err != nil {
				return nil, err
			}
			out = append(out, groups...)
		}

		return out, nil
	}
}
