package collections

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// cell is the storage unit for one pair. Deleting a key discards its
// cell; reinserting the key allocates a fresh cell at the end, so stale
// references to a removed cell never come back into the map.
type cell[K any, V any] struct {
	key K
	val V
}

type orderedMap[K any, R comparable, V any] struct {
	keys  KeyDiscipline[K, R]
	index map[R]*cell[K, V]
	order []*cell[K, V]
}

// NewOrderedMap returns an insertion-ordered map over comparable keys
// compared by Go equality.
func NewOrderedMap[K comparable, V any]() Map[K, V] {
	return NewCustomMap[K, K, V](strictKeys[K]{})
}

// NewFloatMap returns an insertion-ordered map over floating-point keys
// where -0 and +0 are one key and NaN equals NaN.
func NewFloatMap[K constraints.Float, V any]() Map[K, V] {
	return NewCustomMap[K, uint64, V](floatKeys[K]{})
}

// NewIdentityMap returns an insertion-ordered map that holds only
// reference-kind keys (pointers, maps, chans, funcs) and compares them by
// identity. Other keys fail with ErrInvalidKey.
func NewIdentityMap[K any, V any]() Map[K, V] {
	return NewCustomMap[K, uintptr, V](identityKeys[K]{})
}

// NewCustomMap returns an insertion-ordered map using the supplied key
// discipline.
func NewCustomMap[K any, R comparable, V any](keys KeyDiscipline[K, R]) Map[K, V] {
	return &orderedMap[K, R, V]{
		keys:  keys,
		index: make(map[R]*cell[K, V]),
		order: make([]*cell[K, V], 0),
	}
}

func (m *orderedMap[K, R, V]) Contains(k K) bool {
	r, err := m.keys.Canonicalize(k)
	if err != nil {
		return false
	}
	_, ok := m.index[r]
	return ok
}

func (m *orderedMap[K, R, V]) Get(k K) (v V, err error) {
	r, err := m.keys.Canonicalize(k)
	if err != nil {
		return v, err
	}
	c, ok := m.index[r]
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return c.val, nil
}

func (m *orderedMap[K, R, V]) Put(k K, v V) error {
	r, err := m.keys.Canonicalize(k)
	if err != nil {
		return err
	}
	if c, ok := m.index[r]; ok {
		c.val = v
		return nil
	}
	c := &cell[K, V]{key: k, val: v}
	m.index[r] = c
	m.order = append(m.order, c)
	return nil
}

func (m *orderedMap[K, R, V]) Delete(k K) error {
	r, err := m.keys.Canonicalize(k)
	if err != nil {
		return err
	}
	c, ok := m.index[r]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	delete(m.index, r)
	for i := range m.order {
		if m.order[i] == c {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *orderedMap[K, R, V]) Size() int {
	return len(m.order)
}

func (m *orderedMap[K, R, V]) Keys() []K {
	arr := make([]K, 0, m.Size())
	for _, c := range m.order {
		arr = append(arr, c.key)
	}
	return arr
}

func (m *orderedMap[K, R, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, c := range m.order {
		arr = append(arr, c.val)
	}
	return arr
}

func (m *orderedMap[K, R, V]) Range(fn func(k K, v V) bool) {
	for _, c := range m.order {
		if !fn(c.key, c.val) {
			return
		}
	}
}
