package summary

import (
	"strconv"

	gocache "github.com/patrickmn/go-cache"
)

// Registry shares summary caches between callers that summarize the same
// data, keyed by a dataset fingerprint. Entries never expire.
type Registry struct {
	store *gocache.Cache
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{store: gocache.New(gocache.NoExpiration, 0)}
}

// Cache returns the cache registered for key, registering one around compute
// if there is none. compute is ignored when key is already registered.
//
// A concurrent Forget of key may drop the returned cache from the registry
// right away; the returned cache stays usable.
func (r *Registry) Cache(key uint64, compute Factory) *Cache {
	k := strconv.FormatUint(key, 16)
	c := NewCache(compute)
	for {
		if v, ok := r.store.Get(k); ok {
			if cached, ok := v.(*Cache); ok {
				return cached
			}
		}
		if err := r.store.Add(k, c, gocache.NoExpiration); err == nil {
			return c
		}
		// registered concurrently, or forgotten between Get and Add
	}
}

// Forget drops the cache registered for key.
func (r *Registry) Forget(key uint64) {
	r.store.Delete(strconv.FormatUint(key, 16))
}

// Len returns the number of registered caches.
func (r *Registry) Len() int {
	return r.store.ItemCount()
}
