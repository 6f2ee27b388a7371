// Package collections provides insertion-ordered keyed collections with
// pluggable key disciplines and get-or-insert default access.
package collections

// Map is an insertion-ordered collection of key-value pairs with unique
// keys. Lookup equality is defined by the key discipline the map was
// constructed with; enumeration follows insertion order.
type Map[K any, V any] interface {
	// Get returns the value stored for k. It fails with ErrKeyNotFound
	// when no pair for k exists and with ErrInvalidKey when k is not
	// holdable by this map's key discipline.
	Get(k K) (V, error)
	// Put inserts or replaces the pair for k. Replacing keeps the
	// existing pair's position; a new key is appended at the end.
	Put(k K, v V) error
	// Delete removes the pair for k. A later Put for the same key
	// creates a new pair at the end rather than restoring the old one.
	Delete(k K) error
	Contains(k K) bool
	Size() int
	Keys() []K
	Values() []V
	// Range iterates pairs in insertion order until fn returns false.
	Range(fn func(k K, v V) bool)
}
