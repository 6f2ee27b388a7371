package collections

import "errors"

// GetOrInsert returns the value stored for k, inserting v first when k is
// absent. A present key keeps its stored value and v is discarded; the
// map is not touched on that path.
func GetOrInsert[K any, V any](m Map[K, V], k K, v V) (V, error) {
	cur, err := m.Get(k)
	if err == nil {
		return cur, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		var zero V
		return zero, err
	}
	if err := m.Put(k, v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// GetOrInsertComputed returns the value stored for k, computing and
// inserting one when k is absent. compute runs at most once and only on
// the absent-key path; a compute error propagates verbatim and nothing is
// committed.
//
// compute may mutate m before returning, including for k itself. Its
// mutations are immediately visible, and the key is re-resolved after it
// returns rather than through a cached position: if compute inserted a
// pair for k, that pair keeps its position and takes the computed value;
// otherwise a new pair is appended. Either way k maps to the computed
// value exactly once afterward.
func GetOrInsertComputed[K any, V any](m Map[K, V], k K, compute func(k K) (V, error)) (v V, err error) {
	if compute == nil {
		return v, ErrNotInvocable
	}
	cur, err := m.Get(k)
	if err == nil {
		return cur, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		var zero V
		return zero, err
	}
	v, err = compute(k)
	if err != nil {
		var zero V
		return zero, err
	}
	if err := m.Put(k, v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}
