package list

import "github.com/pavanmanishd/arena/v2"

// Builder appends elements at the tail of a list.
//
// Push links the new node through the previous tail's next cell, so a List
// obtained from the builder grows with every later Push.
type Builder[T any] struct {
	arena *arena.Arena
	first *node[T]
	last  *node[T]
}

// NewBuilder returns an empty builder allocating from a.
func NewBuilder[T any](a *arena.Arena) *Builder[T] {
	return &Builder[T]{arena: a}
}

// Push appends value to the end of the list.
func (b *Builder[T]) Push(value T) {
	n := arena.Alloc(b.arena, node[T]{value: arena.Adopt(b.arena, value)})
	if b.last == nil {
		b.first = n
	} else {
		b.last.next.Set(n)
	}
	b.last = n
}

// List returns the list built so far.
func (b *Builder[T]) List() List[T] {
	return List[T]{head: b.first}
}

// Clear starts a new, empty list. Nodes already pushed stay in the arena and
// lists obtained earlier are unaffected.
func (b *Builder[T]) Clear() {
	b.first = nil
	b.last = nil
}
