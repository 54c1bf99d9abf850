// Package slotcache holds the shared contracts of the slotcache module:
// the Cache interface, pluggable backing storage for keys and values, an
// external-mutex wrapper and the module logger.
//
// The LRU store itself lives in the lru sub-package.
package slotcache

// Cache defines the basic operations that all cache implementations should support
type Cache[K comparable, V any] interface {
	// Set inserts or updates key, marking it most recently used.
	Set(key K, value V)
	// Get returns the value for key and marks it most recently used.
	Get(key K) (V, bool)
	// Peek returns the value for key without changing its recency.
	Peek(key K) (V, bool)
	// Has reports whether key is present without changing its recency.
	Has(key K) bool
	Remove(key K) bool
	Clear()
	Len() int
}
