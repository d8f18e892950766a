// Package cache provides a small generic LRU cache.
//
// The mipmap builder keeps one per Builder to remember which texture sizes a
// device accepted, so repeated builds of the same shape skip the capability
// probes.
//
//	c := cache.New[fitKey, fitResult](64)
//	c.Set(k, r)
//	r, ok := c.Get(k)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
