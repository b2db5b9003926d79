package arena

import "fmt"

// CopyCell is a mutable slot for a copyable value. It never hands out a
// pointer to the value it holds: Get copies the value out and Set copies a
// new one in, so a cell can be mutated through any shared pointer to it.
//
// CopyCell is not a synchronization primitive. The zero value holds the zero T.
type CopyCell[T any] struct {
	value T
}

// NewCopyCell returns a cell holding value.
func NewCopyCell[T any](value T) CopyCell[T] {
	return CopyCell[T]{value: value}
}

// Get returns a copy of the contained value.
func (c *CopyCell[T]) Get() T {
	return c.value
}

// Set overwrites the contained value.
func (c *CopyCell[T]) Set(value T) {
	c.value = value
}

// Replace stores value and returns the previous one.
func (c *CopyCell[T]) Replace(value T) T {
	old := c.value
	c.value = value
	return old
}

// Update stores fn(old) and returns the new value.
func (c *CopyCell[T]) Update(fn func(T) T) T {
	c.value = fn(c.value)
	return c.value
}

func (c *CopyCell[T]) String() string {
	return fmt.Sprint(c.value)
}
