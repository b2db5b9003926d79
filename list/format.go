package list

import (
	"fmt"
	"strings"

	"github.com/pavanmanishd/arena/v2/internal/codec"
)

// Equal reports whether x and y hold equal elements in the same order.
func Equal[T comparable](x, y List[T]) bool {
	a, b := x.head, y.head
	for a != nil && b != nil {
		if a == b {
			// Shared tail
			return true
		}
		if a.value != b.value {
			return false
		}
		a, b = a.next.Get(), b.next.Get()
	}
	return a == nil && b == nil
}

// String formats the list like a Go slice: [a b c].
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := l.head; e != nil; e = e.next.Get() {
		if e != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, e.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// MarshalJSON encodes the list as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	buf := []byte{'['}
	var err error
	for e := l.head; e != nil; e = e.next.Get() {
		if e != l.head {
			buf = append(buf, ',')
		}
		if buf, err = codec.Default.Append(buf, e.value); err != nil {
			return nil, fmt.Errorf("list: marshal element: %w", err)
		}
	}
	return append(buf, ']'), nil
}
