// Package offheap provides fixed-length numeric arrays that live outside the
// Go heap, for use as key or value storage of large caches. The garbage
// collector never scans them, so they suit caches of millions of numeric
// entries.
//
// Only pointer-free element types are allowed; see Number.
package offheap

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/kolobok-kelbek/slotcache"
)

// Number lists the element types an Array may hold. None of them contain
// Go pointers, which must never be stored in memory the runtime does not
// manage.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

var ErrInvalidLength = errors.New("offheap: length must be positive")

// Array is a fixed-length array of T. It implements slotcache.Storage and
// io.Closer. The zero value is not usable; create one with New.
type Array[T Number] struct {
	data  []T
	raw   []byte
	heap  bool
	freed bool
}

var _ slotcache.Storage[uint64] = (*Array[uint64])(nil)

// New allocates a zeroed Array of n elements.
func New[T Number](n int) (*Array[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	var zero T
	size := uint64(n) * uint64(unsafe.Sizeof(zero))
	if size > uint64(^uint(0)>>1) {
		return nil, fmt.Errorf("offheap: %d elements of %d bytes overflow the address space", n, unsafe.Sizeof(zero))
	}

	raw, heap, err := allocate(int(size))
	if err != nil {
		return nil, fmt.Errorf("offheap: allocate %d bytes: %w", size, err)
	}

	slotcache.Logger().Debug("offheap: array allocated",
		"elements", n,
		"bytes", size,
		"heap", heap)

	return &Array[T]{
		data: unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), n),
		raw:  raw,
		heap: heap,
	}, nil
}

// Factory returns a slotcache.StorageFactory allocating Arrays of T.
func Factory[T Number]() slotcache.StorageFactory[T] {
	return func(capacity int) (slotcache.Storage[T], error) {
		a, err := New[T](capacity)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

func (a *Array[T]) Get(i int) T    { return a.data[i] }
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }
func (a *Array[T]) Len() int       { return len(a.data) }

// Close releases the memory. Further Get or Set calls panic. Close may be
// called more than once.
func (a *Array[T]) Close() error {
	if a.freed {
		return nil
	}
	a.freed = true
	raw := a.raw
	a.data, a.raw = nil, nil
	if a.heap {
		return nil
	}
	if err := release(raw); err != nil {
		return fmt.Errorf("offheap: release %d bytes: %w", len(raw), err)
	}
	return nil
}
