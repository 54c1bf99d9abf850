package slotcache

import "sync"

// Locked serializes access to a Cache that is not itself safe for
// concurrent use. Get takes the write lock because it changes recency.
type Locked[K comparable, V any] struct {
	lock  sync.RWMutex
	inner Cache[K, V]
}

var _ Cache[string, int] = (*Locked[string, int])(nil)

// NewLocked wraps c. The caller must not use c directly afterwards.
func NewLocked[K comparable, V any](c Cache[K, V]) *Locked[K, V] {
	return &Locked[K, V]{inner: c}
}

func (l *Locked[K, V]) Set(key K, value V) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.inner.Set(key, value)
}

func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.inner.Get(key)
}

func (l *Locked[K, V]) Peek(key K) (V, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.inner.Peek(key)
}

func (l *Locked[K, V]) Has(key K) bool {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.inner.Has(key)
}

func (l *Locked[K, V]) Remove(key K) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.inner.Remove(key)
}

func (l *Locked[K, V]) Clear() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.inner.Clear()
}

func (l *Locked[K, V]) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.inner.Len()
}
