// Package hashmap implements insert-only hash maps whose slot arrays and
// entries live in an arena.
//
// Map uses open addressing with linear probing over a power-of-two slot
// array. Every slot is a CopyCell holding either nil or a pointer to an
// arena-allocated entry. The table grows by doubling before an insert would
// push the load factor above 3/4; the old slot array is abandoned in the
// arena. Entries are never moved, so growth only rewrites slot cells.
//
// BloomMap adds a one-word bloom filter that answers most lookups of absent
// keys without probing the table.
//
// Neither type supports removing a single key. Clear empties a whole map.
package hashmap

import (
	"iter"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/internal/hash"
)

const (
	// minCapacity is the slot count of the first slot array. Power of two.
	minCapacity = 8

	// The load factor is kept at or below maxLoadNum/maxLoadDen.
	maxLoadNum = 3
	maxLoadDen = 4
)

type node[K comparable, V any] struct {
	key   K
	hash  uint64
	value arena.CopyCell[V]
	next  arena.CopyCell[*node[K, V]] // insertion order
}

type slot[K comparable, V any] = arena.CopyCell[*node[K, V]]

// Map is a hash map of keys K to values V stored in an arena.
//
// The zero value is an empty map ready to use; it allocates nothing until the
// first Insert. A Map must not be copied after first use. It may itself be a
// field of an arena-allocated value.
type Map[K comparable, V any] struct {
	slots arena.CopyCell[[]slot[K, V]]
	count arena.CopyCell[int]
	first arena.CopyCell[*node[K, V]]
	last  arena.CopyCell[*node[K, V]]
}

// New returns an empty map with zero capacity.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Insert maps key to value. If key was already present its value is
// overwritten in place and the previous value is returned with true.
// Strings in keys and values, struct fields included, are copied into the
// arena. Insert panics with an error wrapping arena.ErrUnsupportedType if K or
// V holds interfaces, maps, channels or funcs.
func (m *Map[K, V]) Insert(a *arena.Arena, key K, value V) (V, bool) {
	return m.insert(a, key, hash.Of(key), value)
}

// Get returns a copy of the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.find(key, hash.Of(key)); n != nil {
		return n.value.Get(), true
	}
	var zero V
	return zero, false
}

// GetKey returns the stored copy of key.
func (m *Map[K, V]) GetKey(key K) (K, bool) {
	if n := m.find(key, hash.Of(key)); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key, hash.Of(key)) != nil
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	return m.count.Get()
}

// Cap returns the length of the current slot array.
func (m *Map[K, V]) Cap() int {
	return len(m.slots.Get())
}

// IsEmpty reports whether the map holds no keys.
func (m *Map[K, V]) IsEmpty() bool {
	return m.count.Get() == 0
}

// Clear empties the map. Its entries and slot array stay in the arena.
func (m *Map[K, V]) Clear() {
	m.slots.Set(nil)
	m.count.Set(0)
	m.first.Set(nil)
	m.last.Set(nil)
}

// All returns an iterator over key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.first.Get(); n != nil; n = n.next.Get() {
			if !yield(n.key, n.value.Get()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := m.first.Get(); n != nil; n = n.next.Get() {
			if !yield(n.key) {
				return
			}
		}
	}
}

func (m *Map[K, V]) insert(a *arena.Arena, key K, h uint64, value V) (V, bool) {
	if n := m.find(key, h); n != nil {
		return n.value.Replace(arena.Adopt(a, value)), true
	}

	checkTypes[K, V]()
	key, value = arena.Adopt(a, key), arena.Adopt(a, value)

	slots := m.slots.Get()
	count := m.count.Get()
	if (count+1)*maxLoadDen > len(slots)*maxLoadNum {
		slots = m.grow(a, slots)
	}

	n := arena.Alloc(a, node[K, V]{
		key:   key,
		hash:  h,
		value: arena.NewCopyCell(value),
	})
	place(slots, n)

	if last := m.last.Get(); last != nil {
		last.next.Set(n)
	} else {
		m.first.Set(n)
	}
	m.last.Set(n)
	m.count.Set(count + 1)

	var zero V
	return zero, false
}

// checkTypes panics if K or V cannot be stored, before anything is allocated.
func checkTypes[K comparable, V any]() {
	if err := arena.Storable[K](); err != nil {
		panic(err)
	}
	if err := arena.Storable[V](); err != nil {
		panic(err)
	}
}

// find probes from the home slot of h until it hits key or an empty slot.
func (m *Map[K, V]) find(key K, h uint64) *node[K, V] {
	slots := m.slots.Get()
	if len(slots) == 0 {
		return nil
	}
	mask := uint64(len(slots) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		n := slots[i].Get()
		if n == nil {
			return nil
		}
		if n.hash == h && n.key == key {
			return n
		}
	}
}

// grow doubles the slot array and re-places every entry by its hash.
func (m *Map[K, V]) grow(a *arena.Arena, old []slot[K, V]) []slot[K, V] {
	size := minCapacity
	if len(old) > 0 {
		size = len(old) * 2
	}

	slots := arena.AllocSlice[slot[K, V]](a, size)
	for n := m.first.Get(); n != nil; n = n.next.Get() {
		place(slots, n)
	}
	m.slots.Set(slots)

	if len(old) > 0 {
		a.Logger().Debug("hashmap grown", "from", len(old), "to", size, "len", m.count.Get())
	}
	return slots
}

// place stores n in the first empty slot of its probe sequence.
// The caller guarantees that slots has room.
func place[K comparable, V any](slots []slot[K, V], n *node[K, V]) {
	mask := uint64(len(slots) - 1)
	i := n.hash & mask
	for slots[i].Get() != nil {
		i = (i + 1) & mask
	}
	slots[i].Set(n)
}
