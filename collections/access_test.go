package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetOrInsertAbsentKey(t *testing.T) {
	m := NewOrderedMap[string, int]()
	got, err := GetOrInsert(m, "a", 1)
	require.Nil(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, 1, m.Size())
	v, err := m.Get("a")
	require.Nil(t, err)
	require.Equal(t, 1, v)
}

func TestGetOrInsertPresentKeyKeepsStoredValue(t *testing.T) {
	m := NewOrderedMap[string, int]()
	got, err := GetOrInsert(m, "a", 1)
	require.Nil(t, err)
	require.Equal(t, 1, got)
	got, err = GetOrInsert(m, "a", 2)
	require.Nil(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, 1, m.Size())
	v, err := m.Get("a")
	require.Nil(t, err)
	require.Equal(t, 1, v)
}

func TestGetOrInsertInvalidKey(t *testing.T) {
	m := NewIdentityMap[any, string]()
	_, err := GetOrInsert[any, string](m, 42, "x")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrInvalidKey))
	require.Equal(t, 0, m.Size())
}

func TestGetOrInsertComputedAbsentKey(t *testing.T) {
	m := NewOrderedMap[string, int]()
	calls := 0
	got, err := GetOrInsertComputed(m, "k", func(k string) (int, error) {
		calls++
		return 7, nil
	})
	require.Nil(t, err)
	require.Equal(t, 7, got)
	require.Equal(t, 1, calls)
	v, err := m.Get("k")
	require.Nil(t, err)
	require.Equal(t, 7, v)
}

func TestGetOrInsertComputedPresentKeyIsLazy(t *testing.T) {
	m := NewOrderedMap[string, int]()
	require.Nil(t, m.Put("k", 1))
	calls := 0
	got, err := GetOrInsertComputed(m, "k", func(k string) (int, error) {
		calls++
		return 99, nil
	})
	require.Nil(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, 0, calls)
	require.Equal(t, 1, m.Size())
	v, err := m.Get("k")
	require.Nil(t, err)
	require.Equal(t, 1, v)
}

func TestGetOrInsertComputedNilCallback(t *testing.T) {
	m := NewOrderedMap[string, int]()
	_, err := GetOrInsertComputed[string, int](m, "k", nil)
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrNotInvocable))
	require.Equal(t, 0, m.Size())
}

func TestGetOrInsertComputedInvalidKey(t *testing.T) {
	m := NewIdentityMap[any, string]()
	calls := 0
	_, err := GetOrInsertComputed[any, string](m, "not a reference", func(k any) (string, error) {
		calls++
		return "x", nil
	})
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrInvalidKey))
	require.Equal(t, 0, calls)
	require.Equal(t, 0, m.Size())
}

func TestGetOrInsertComputedCallbackFailure(t *testing.T) {
	m := NewOrderedMap[string, int]()
	require.Nil(t, m.Put("other", 1))
	boom := errors.New("boom")
	_, err := GetOrInsertComputed(m, "k", func(k string) (int, error) {
		return 0, boom
	})
	require.NotNil(t, err)
	require.True(t, errors.Is(err, boom))
	require.Equal(t, false, m.Contains("k"))
	require.Equal(t, 1, m.Size())
	require.Equal(t, []string{"other"}, m.Keys())
}

func TestGetOrInsertComputedReentrantInsertOtherKey(t *testing.T) {
	m := NewOrderedMap[string, int]()
	got, err := GetOrInsertComputed(m, "k1", func(k string) (int, error) {
		require.Nil(t, m.Put("k2", 2))
		return 1, nil
	})
	require.Nil(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, 2, m.Size())
	// k2 was inserted while k1 was still being computed
	require.Equal(t, []string{"k2", "k1"}, m.Keys())
	v, err := m.Get("k1")
	require.Nil(t, err)
	require.Equal(t, 1, v)
	v, err = m.Get("k2")
	require.Nil(t, err)
	require.Equal(t, 2, v)
}

func TestGetOrInsertComputedReentrantInsertSameKey(t *testing.T) {
	m := NewOrderedMap[string, int]()
	require.Nil(t, m.Put("a", 0))
	got, err := GetOrInsertComputed(m, "k", func(k string) (int, error) {
		require.Nil(t, m.Put(k, -1))
		require.Nil(t, m.Put("z", 9))
		return 42, nil
	})
	require.Nil(t, err)
	require.Equal(t, 42, got)
	// the pair the callback inserted keeps its position, the computed
	// value wins
	require.Equal(t, []string{"a", "k", "z"}, m.Keys())
	v, err := m.Get("k")
	require.Nil(t, err)
	require.Equal(t, 42, v)
}

func TestGetOrInsertComputedReentrantDeleteAndReinsertSameKey(t *testing.T) {
	m := NewOrderedMap[string, int]()
	got, err := GetOrInsertComputed(m, "k1", func(k string) (int, error) {
		require.Nil(t, m.Put(k, -1))
		require.Nil(t, m.Delete(k))
		require.Nil(t, m.Put(k, -2))
		return 5, nil
	})
	require.Nil(t, err)
	require.Equal(t, 5, got)
	require.Equal(t, 1, m.Size())
	v, err := m.Get("k1")
	require.Nil(t, err)
	require.Equal(t, 5, v)
}

func TestGetOrInsertComputedReentrantDeleteSameKey(t *testing.T) {
	m := NewOrderedMap[string, int]()
	got, err := GetOrInsertComputed(m, "k", func(k string) (int, error) {
		require.Nil(t, m.Put(k, -1))
		require.Nil(t, m.Delete(k))
		return 5, nil
	})
	require.Nil(t, err)
	require.Equal(t, 5, got)
	require.Equal(t, 1, m.Size())
	v, err := m.Get("k")
	require.Nil(t, err)
	require.Equal(t, 5, v)
}
