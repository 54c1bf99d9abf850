package slotcache

// Storage is a fixed-length homogeneous sequence used to back the keys or
// values of a cache. Indexes are slot numbers in [0, Len()).
type Storage[T any] interface {
	Get(i int) T
	Set(i int, v T)
	Len() int
}

// StorageFactory allocates a Storage able to hold capacity elements.
// It is called once, at cache construction.
type StorageFactory[T any] func(capacity int) (Storage[T], error)

// SliceStorage is the default Storage, a plain Go slice.
type SliceStorage[T any] []T

func (s SliceStorage[T]) Get(i int) T    { return s[i] }
func (s SliceStorage[T]) Set(i int, v T) { s[i] = v }
func (s SliceStorage[T]) Len() int       { return len(s) }

// NewSliceStorage is a StorageFactory returning a zeroed SliceStorage.
func NewSliceStorage[T any](capacity int) (Storage[T], error) {
	return make(SliceStorage[T], capacity), nil
}
