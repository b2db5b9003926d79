// Package list implements a persistent singly-linked list whose nodes live in
// an arena.
//
// A List is a small value holding a reference to its first node. PushFront
// allocates one node and returns a new List; the old List still sees exactly
// the elements it saw before, because existing nodes are never rewritten.
//
//	a := arena.New()
//	var l list.List[int]
//	l = l.PushFront(a, 3)
//	l = l.PushFront(a, 2)
//	l = l.PushFront(a, 1) // 1, 2, 3
package list

import (
	"iter"

	"github.com/pavanmanishd/arena/v2"
)

type node[T any] struct {
	value T
	next  arena.CopyCell[*node[T]]
}

// List is a singly-linked list of arena-resident nodes.
// The zero value is an empty list.
type List[T any] struct {
	head *node[T]
}

// New returns an empty list. It allocates nothing.
func New[T any]() List[T] {
	return List[T]{}
}

// From returns a single-element list holding value.
func From[T any](a *arena.Arena, value T) List[T] {
	return List[T]{}.PushFront(a, value)
}

// FromSlice returns a list holding values in slice order.
func FromSlice[T any](a *arena.Arena, values []T) List[T] {
	b := NewBuilder[T](a)
	for _, v := range values {
		b.Push(v)
	}
	return b.List()
}

// PushFront returns a list with value in front of the elements of l.
// l itself is unchanged. Strings in value are copied into the arena; element
// types the arena cannot hold make PushFront panic (see arena.Adopt).
func (l List[T]) PushFront(a *arena.Arena, value T) List[T] {
	n := arena.Alloc(a, node[T]{
		value: arena.Adopt(a, value),
		next:  arena.NewCopyCell(l.head),
	})
	return List[T]{head: n}
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Front returns the first element.
func (l List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Shift returns the first element and the list of the remaining elements.
// l itself is unchanged.
func (l List[T]) Shift() (T, List[T], bool) {
	if l.head == nil {
		var zero T
		return zero, l, false
	}
	return l.head.value, List[T]{head: l.head.next.Get()}, true
}

// OnlyElement returns the element of a list that holds exactly one.
func (l List[T]) OnlyElement() (T, bool) {
	if l.head == nil || l.head.next.Get() != nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Len walks the list and returns its length.
func (l List[T]) Len() int {
	n := 0
	for e := l.head; e != nil; e = e.next.Get() {
		n++
	}
	return n
}

// All returns an iterator over references to the elements, front to back.
// The references point into the arena.
func (l List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := l.head; e != nil; e = e.next.Get() {
			if !yield(&e.value) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the elements, front to back.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next.Get() {
			if !yield(e.value) {
				return
			}
		}
	}
}
