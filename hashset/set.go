// Package hashset implements insert-only hash sets stored in an arena.
//
// A Set is a hashmap.Map with zero-sized values, so it shares the map's
// layout, growth policy and insertion-order iteration. BloomSet puts the
// same one-word bloom filter as hashmap.BloomMap in front of the lookup.
package hashset

import (
	"iter"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/hashmap"
)

// Set is a set of T stored in an arena.
//
// The zero value is an empty set ready to use. A Set must not be copied
// after first use.
type Set[T comparable] struct {
	m hashmap.Map[T, struct{}]
}

// New returns an empty set with zero capacity.
func New[T comparable]() *Set[T] {
	return &Set[T]{}
}

// Insert adds item and reports whether it was newly added.
// Strings in item are copied into the arena. Insert panics with an error
// wrapping arena.ErrUnsupportedType if T holds interfaces, maps, channels or
// funcs.
func (s *Set[T]) Insert(a *arena.Arena, item T) bool {
	_, replaced := s.m.Insert(a, item, struct{}{})
	return !replaced
}

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	return s.m.Contains(item)
}

// Get returns the stored copy of item.
func (s *Set[T]) Get(item T) (T, bool) {
	return s.m.GetKey(item)
}

// Len returns the number of items.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// Cap returns the length of the current slot array.
func (s *Set[T]) Cap() int {
	return s.m.Cap()
}

// IsEmpty reports whether the set holds no items.
func (s *Set[T]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Clear empties the set.
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// All returns an iterator over items in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.m.Keys()
}
