package hashset

import (
	"iter"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/hashmap"
)

// BloomSet is a Set with a 64-bit bloom filter in front of it. Contains
// answers most queries for absent items from the filter alone.
//
// The zero value is an empty set ready to use. A BloomSet must not be copied
// after first use.
type BloomSet[T comparable] struct {
	m hashmap.BloomMap[T, struct{}]
}

// NewBloom returns an empty bloom set with zero capacity.
func NewBloom[T comparable]() *BloomSet[T] {
	return &BloomSet[T]{}
}

// FromSet moves the items of s into a new BloomSet. s is left empty.
func FromSet[T comparable](s *Set[T]) *BloomSet[T] {
	b := &BloomSet[T]{}
	b.m = *hashmap.FromMap(&s.m)
	return b
}

// IntoSet moves the items of b into a new Set. b is left empty.
func (b *BloomSet[T]) IntoSet() *Set[T] {
	s := &Set[T]{}
	s.m = *b.m.IntoMap()
	return s
}

// Insert adds item and reports whether it was newly added.
func (b *BloomSet[T]) Insert(a *arena.Arena, item T) bool {
	_, replaced := b.m.Insert(a, item, struct{}{})
	return !replaced
}

// Contains reports whether item is in the set.
func (b *BloomSet[T]) Contains(item T) bool {
	return b.m.Contains(item)
}

// MayContain consults only the filter.
func (b *BloomSet[T]) MayContain(item T) bool {
	return b.m.MayContain(item)
}

// Get returns the stored copy of item.
func (b *BloomSet[T]) Get(item T) (T, bool) {
	return b.m.GetKey(item)
}

func (b *BloomSet[T]) Len() int {
	return b.m.Len()
}

func (b *BloomSet[T]) Cap() int {
	return b.m.Cap()
}

func (b *BloomSet[T]) IsEmpty() bool {
	return b.m.IsEmpty()
}

// Clear empties the set and resets the filter.
func (b *BloomSet[T]) Clear() {
	b.m.Clear()
}

// All returns an iterator over items in insertion order.
func (b *BloomSet[T]) All() iter.Seq[T] {
	return b.m.Keys()
}
