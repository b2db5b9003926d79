package hashmap

import (
	"iter"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/internal/bloom"
	"github.com/pavanmanishd/arena/v2/internal/hash"
)

// BloomMap is a Map with a 64-bit bloom filter in front of it.
//
// Every Insert ORs a mask derived from the key hash into the filter. A lookup
// whose mask is not fully set in the filter returns absent without touching
// the slot array. This pays off for small maps that are mostly queried for
// keys they do not hold.
//
// The zero value is an empty map ready to use. A BloomMap must not be copied
// after first use.
type BloomMap[K comparable, V any] struct {
	filter arena.CopyCell[uint64]
	inner  Map[K, V]
}

// NewBloom returns an empty bloom map with zero capacity.
func NewBloom[K comparable, V any]() *BloomMap[K, V] {
	return &BloomMap[K, V]{}
}

// FromMap moves the entries of m into a new BloomMap and computes its filter.
// m is left empty.
func FromMap[K comparable, V any](m *Map[K, V]) *BloomMap[K, V] {
	b := &BloomMap[K, V]{}
	var filter uint64
	for n := m.first.Get(); n != nil; n = n.next.Get() {
		filter |= bloom.Mask(n.hash)
	}
	b.filter.Set(filter)
	b.inner.slots.Set(m.slots.Get())
	b.inner.count.Set(m.count.Get())
	b.inner.first.Set(m.first.Get())
	b.inner.last.Set(m.last.Get())
	m.Clear()
	return b
}

// IntoMap moves the entries of b into a new Map. b is left empty.
func (b *BloomMap[K, V]) IntoMap() *Map[K, V] {
	m := &Map[K, V]{}
	m.slots.Set(b.inner.slots.Get())
	m.count.Set(b.inner.count.Get())
	m.first.Set(b.inner.first.Get())
	m.last.Set(b.inner.last.Get())
	b.Clear()
	return m
}

// Insert maps key to value. If key was already present its value is
// overwritten in place and the previous value is returned with true.
func (b *BloomMap[K, V]) Insert(a *arena.Arena, key K, value V) (V, bool) {
	h := hash.Of(key)
	old, replaced := b.inner.insert(a, key, h, value)
	b.filter.Set(b.filter.Get() | bloom.Mask(h))
	return old, replaced
}

// Get returns a copy of the value stored for key.
func (b *BloomMap[K, V]) Get(key K) (V, bool) {
	if n := b.find(key); n != nil {
		return n.value.Get(), true
	}
	var zero V
	return zero, false
}

// GetKey returns the stored copy of key.
func (b *BloomMap[K, V]) GetKey(key K) (K, bool) {
	if n := b.find(key); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Contains reports whether key is present.
func (b *BloomMap[K, V]) Contains(key K) bool {
	return b.find(key) != nil
}

// MayContain consults only the filter. False means key is certainly absent;
// true means it may be present.
func (b *BloomMap[K, V]) MayContain(key K) bool {
	return bloom.Match(b.filter.Get(), bloom.Mask(hash.Of(key)))
}

// Len returns the number of keys.
func (b *BloomMap[K, V]) Len() int {
	return b.inner.Len()
}

// Cap returns the length of the current slot array.
func (b *BloomMap[K, V]) Cap() int {
	return b.inner.Cap()
}

// IsEmpty reports whether the map holds no keys.
func (b *BloomMap[K, V]) IsEmpty() bool {
	return b.inner.IsEmpty()
}

// Clear empties the map and resets the filter.
func (b *BloomMap[K, V]) Clear() {
	b.filter.Set(0)
	b.inner.Clear()
}

// All returns an iterator over key/value pairs in insertion order.
func (b *BloomMap[K, V]) All() iter.Seq2[K, V] {
	return b.inner.All()
}

// Keys returns an iterator over keys in insertion order.
func (b *BloomMap[K, V]) Keys() iter.Seq[K] {
	return b.inner.Keys()
}

func (b *BloomMap[K, V]) find(key K) *node[K, V] {
	h := hash.Of(key)
	if !bloom.Match(b.filter.Get(), bloom.Mask(h)) {
		return nil
	}
	return b.inner.find(key, h)
}
