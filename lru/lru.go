// Package lru implements a fixed-capacity LRU cache whose recency list is
// threaded through flat integer arrays instead of heap-allocated nodes.
//
// Every entry lives in a slot numbered [0, capacity). Two link arrays,
// forward and backward, hold slot numbers and order the occupied slots from
// head (most recently used) to tail (least recently used). The arrays use
// the narrowest unsigned width that can address capacity-1, so a cache of
// up to 256 entries spends two bytes per slot on links.
//
// A Cache is not safe for concurrent use. Wrap it with slotcache.NewLocked
// when several goroutines share one.
package lru

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/kolobok-kelbek/slotcache"
)

var (
	ErrInvalidCapacity      = errors.New("lru: capacity must be a positive integer")
	ErrCapacityNotSupported = errors.New("lru: capacity exceeds 32-bit slot addressing")
	ErrStorageMismatch      = errors.New("lru: key and value storage factories must be supplied together")
	ErrStorageTooSmall      = errors.New("lru: storage shorter than capacity")
)

type Cache[K comparable, V any] struct {
	items  map[K]uint32
	keys   slotcache.Storage[K]
	values slotcache.Storage[V]

	forward  pointers
	backward pointers

	capacity int
	size     int
	head     uint32
	tail     uint32
}

var _ slotcache.Cache[string, int] = (*Cache[string, int])(nil)

// NewCache returns an empty cache holding at most capacity entries, backed
// by plain slices.
func NewCache[K comparable, V any](capacity int) (*Cache[K, V], error) {
	return NewCacheWithStorage(capacity, slotcache.NewSliceStorage[K], slotcache.NewSliceStorage[V])
}

// NewCacheWithStorage is like NewCache but allocates key and value storage
// through the given factories, each called once with capacity.
func NewCacheWithStorage[K comparable, V any](
	capacity int,
	keys slotcache.StorageFactory[K],
	values slotcache.StorageFactory[V],
) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	bits := pointerBits(capacity)
	if bits == 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacityNotSupported, capacity)
	}
	if keys == nil || values == nil {
		return nil, ErrStorageMismatch
	}

	ks, err := allocate(keys, capacity)
	if err != nil {
		return nil, fmt.Errorf("lru: key storage: %w", err)
	}
	vs, err := allocate(values, capacity)
	if err != nil {
		closeStorage(ks)
		return nil, fmt.Errorf("lru: value storage: %w", err)
	}

	slotcache.Logger().Debug("lru: cache created",
		"capacity", capacity,
		"pointer_bits", bits,
		"keys", fmt.Sprintf("%T", ks),
		"values", fmt.Sprintf("%T", vs))

	return &Cache[K, V]{
		items:    make(map[K]uint32, capacity),
		keys:     ks,
		values:   vs,
		forward:  newPointers(bits, capacity),
		backward: newPointers(bits, capacity),
		capacity: capacity,
	}, nil
}

func allocate[T any](factory slotcache.StorageFactory[T], capacity int) (slotcache.Storage[T], error) {
	s, err := factory(capacity)
	if err != nil {
		return nil, err
	}
	if s == nil || s.Len() < capacity {
		closeStorage(s)
		return nil, ErrStorageTooSmall
	}
	return s, nil
}

// Set stores value under key and makes key the most recently used entry.
// When the cache is full and key is new, the least recently used entry is
// evicted and its slot reused.
func (c *Cache[K, V]) Set(key K, value V) {
	if slot, ok := c.items[key]; ok {
		c.values.Set(int(slot), value)
		c.promote(slot)
		return
	}

	var slot uint32
	if c.size < c.capacity {
		slot = uint32(c.size)
		c.size++
	} else {
		slot = c.tail
		c.tail = c.backward.get(slot)
		delete(c.items, c.keys.Get(int(slot)))
	}

	c.items[key] = slot
	c.keys.Set(int(slot), key)
	c.values.Set(int(slot), value)

	// On the first insert head == slot == 0, which links the lone slot to
	// itself in both directions.
	c.forward.set(slot, c.head)
	c.backward.set(c.head, slot)
	c.head = slot
}

// Get returns the value stored under key and makes it the most recently
// used entry.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	slot, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.promote(slot)
	return c.values.Get(int(slot)), true
}

// Peek returns the value stored under key without updating its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	slot, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.values.Get(int(slot)), true
}

// Has reports whether key is cached, without updating its recency.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Remove deletes key and reports whether it was present. The entry in the
// highest occupied slot moves into the freed one so that occupied slots
// stay contiguous.
func (c *Cache[K, V]) Remove(key K) bool {
	slot, ok := c.items[key]
	if !ok {
		return false
	}
	delete(c.items, key)

	if c.size == 1 {
		c.reset()
		c.release(slot)
		return true
	}

	c.unlink(slot)

	last := uint32(c.size - 1)
	if slot != last {
		c.move(last, slot)
	}
	c.release(last)
	c.size--
	return true
}

// Clear empties the cache. Backing storage is left as is; stale slots are
// unreachable once the index is reset.
func (c *Cache[K, V]) Clear() {
	c.reset()
	c.items = make(map[K]uint32)
}

func (c *Cache[K, V]) Len() int { return c.size }

func (c *Cache[K, V]) Cap() int { return c.capacity }

// PointerWidth returns the bit width of the link arrays: 8, 16 or 32.
func (c *Cache[K, V]) PointerWidth() int { return c.forward.bits() }

// Keys returns the cached keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.size)
	for k := range c.All() {
		out = append(out, k)
	}
	return out
}

// All yields entries from most to least recently used without promoting
// them. The cache must not be modified during iteration.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		slot := c.head
		for i := 0; i < c.size; i++ {
			if !yield(c.keys.Get(int(slot)), c.values.Get(int(slot))) {
				return
			}
			slot = c.forward.get(slot)
		}
	}
}

// Close releases backing storage that implements io.Closer, such as
// off-heap arrays. The cache must not be used afterwards.
func (c *Cache[K, V]) Close() error {
	c.reset()
	c.items = nil
	return errors.Join(closeStorage(c.keys), closeStorage(c.values))
}

// promote moves slot to head in constant time.
func (c *Cache[K, V]) promote(slot uint32) {
	if slot == c.head {
		return
	}
	oldHead := c.head
	previous := c.backward.get(slot)
	next := c.forward.get(slot)

	if slot == c.tail {
		c.tail = previous
	} else {
		c.backward.set(next, previous)
	}
	c.forward.set(previous, next)

	c.backward.set(oldHead, slot)
	c.forward.set(slot, oldHead)
	c.head = slot
}

// unlink detaches slot from a list of at least two entries.
func (c *Cache[K, V]) unlink(slot uint32) {
	switch slot {
	case c.head:
		c.head = c.forward.get(slot)
	case c.tail:
		c.tail = c.backward.get(slot)
	default:
		previous := c.backward.get(slot)
		next := c.forward.get(slot)
		c.forward.set(previous, next)
		c.backward.set(next, previous)
	}
}

// move relocates the entry in slot from into the unlinked slot to, keeping
// its list position.
func (c *Cache[K, V]) move(from, to uint32) {
	key := c.keys.Get(int(from))
	c.keys.Set(int(to), key)
	c.values.Set(int(to), c.values.Get(int(from)))
	c.items[key] = to

	previous := c.backward.get(from)
	next := c.forward.get(from)
	c.forward.set(to, next)
	c.backward.set(to, previous)

	if from == c.head {
		c.head = to
	} else {
		c.forward.set(previous, to)
	}
	if from == c.tail {
		c.tail = to
	} else {
		c.backward.set(next, to)
	}
}

// release zeroes a vacated slot so it holds no references.
func (c *Cache[K, V]) release(slot uint32) {
	var (
		zeroK K
		zeroV V
	)
	c.keys.Set(int(slot), zeroK)
	c.values.Set(int(slot), zeroV)
}

func (c *Cache[K, V]) reset() {
	c.size = 0
	c.head = 0
	c.tail = 0
}

func closeStorage(s any) error {
	closer, ok := s.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		slotcache.Logger().Warn("lru: releasing storage failed", "storage", fmt.Sprintf("%T", s), "error", err)
		return err
	}
	return nil
}
