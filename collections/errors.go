package collections

import "errors"

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrInvalidKey   = errors.New("key is not holdable by this collection")
	ErrNotInvocable = errors.New("compute callback is not invocable")
)
