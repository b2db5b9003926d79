package hashset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pavanmanishd/arena/v2/internal/codec"
)

// Equal reports whether x and y hold the same items.
func Equal[T comparable](x, y *Set[T]) bool {
	return equal(x.Len(), y.Len(), x.All(), y.Contains)
}

// EqualBloom is Equal for bloom sets.
func EqualBloom[T comparable](x, y *BloomSet[T]) bool {
	return equal(x.Len(), y.Len(), x.All(), y.Contains)
}

func equal[T comparable](xlen, ylen int, xs iter.Seq[T], contains func(T) bool) bool {
	if xlen != ylen {
		return false
	}
	for v := range xs {
		if !contains(v) {
			return false
		}
	}
	return true
}

// String formats the set in insertion order: set[a b c].
func (s *Set[T]) String() string {
	return formatItems(s.All())
}

func (b *BloomSet[T]) String() string {
	return formatItems(b.All())
}

// MarshalJSON encodes the set as a JSON array in insertion order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return marshalItems(s.All())
}

func (b *BloomSet[T]) MarshalJSON() ([]byte, error) {
	return marshalItems(b.All())
}

func formatItems[T any](items iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteString("set[")
	first := true
	for v := range items {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func marshalItems[T any](items iter.Seq[T]) ([]byte, error) {
	buf := []byte{'['}
	var err error
	first := true
	for v := range items {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		if buf, err = codec.Default.Append(buf, v); err != nil {
			return nil, fmt.Errorf("hashset: marshal item %v: %w", v, err)
		}
	}
	return append(buf, ']'), nil
}
