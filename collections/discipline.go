package collections

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// KeyDiscipline decides which keys a collection may hold and how they
// compare. Canonicalize maps a key to a comparable representative; two
// keys are equal iff their representatives are equal under ==. A key the
// collection cannot hold fails with ErrInvalidKey.
type KeyDiscipline[K any, R comparable] interface {
	Canonicalize(k K) (R, error)
}

// strictKeys admits any comparable key and compares by Go equality.
type strictKeys[K comparable] struct{}

func (strictKeys[K]) Canonicalize(k K) (K, error) {
	return k, nil
}

// floatKeys compares floating-point keys by value: negative zero folds
// into positive zero and all NaN payloads collapse into a single key.
type floatKeys[F constraints.Float] struct{}

func (floatKeys[F]) Canonicalize(k F) (uint64, error) {
	f := float64(k)
	if f == 0 {
		f = 0 // fold -0 into +0, their bit patterns differ
	}
	if math.IsNaN(f) {
		f = math.NaN()
	}
	return math.Float64bits(f), nil
}

// identityKeys admits reference-kind keys only and compares by identity.
// It models weakly-keyed collections: value kinds are not holdable.
type identityKeys[K any] struct{}

func (identityKeys[K]) Canonicalize(k K) (uintptr, error) {
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.Pointer(), nil
	default:
		return 0, fmt.Errorf("%w: %s key", ErrInvalidKey, rv.Kind())
	}
}
