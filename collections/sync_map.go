package collections

import "sync"

// SyncMap wraps a Map for use from multiple goroutines. Every operation
// holds one lock, so GetOrInsertComputed runs its compute callback
// exactly once per absent key across goroutines. The callback runs under
// the lock and must not call back into the same SyncMap; reentrant
// mutation is the plain Map's domain.
type SyncMap[K any, V any] struct {
	mu    sync.Mutex
	inner Map[K, V]
}

// NewSyncMap returns a goroutine-safe insertion-ordered map over
// comparable keys.
func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return WrapSyncMap(NewOrderedMap[K, V]())
}

// WrapSyncMap wraps an existing Map. The caller must stop using the
// wrapped map directly.
func WrapSyncMap[K any, V any](inner Map[K, V]) *SyncMap[K, V] {
	return &SyncMap[K, V]{inner: inner}
}

func (m *SyncMap[K, V]) Get(k K) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Get(k)
}

func (m *SyncMap[K, V]) Put(k K, v V) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Put(k, v)
}

func (m *SyncMap[K, V]) Delete(k K) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Delete(k)
}

func (m *SyncMap[K, V]) Contains(k K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Contains(k)
}

func (m *SyncMap[K, V]) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Size()
}

func (m *SyncMap[K, V]) Keys() []K {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Keys()
}

func (m *SyncMap[K, V]) Values() []V {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Values()
}

func (m *SyncMap[K, V]) Range(fn func(k K, v V) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inner.Range(fn)
}

// GetOrInsert is the atomic form of the package-level GetOrInsert.
func (m *SyncMap[K, V]) GetOrInsert(k K, v V) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return GetOrInsert(m.inner, k, v)
}

// GetOrInsertComputed is the atomic form of the package-level
// GetOrInsertComputed. compute runs under the map lock.
func (m *SyncMap[K, V]) GetOrInsertComputed(k K, compute func(k K) (V, error)) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return GetOrInsertComputed(m.inner, k, compute)
}
