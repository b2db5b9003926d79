package hashmap

import (
	"encoding"
	"fmt"
	"iter"
	"strings"

	"github.com/pavanmanishd/arena/v2/internal/codec"
)

// Equal reports whether x and y hold the same keys mapped to equal values.
// Insertion order is ignored.
func Equal[K, V comparable](x, y *Map[K, V]) bool {
	if x.Len() != y.Len() {
		return false
	}
	for k, v := range x.All() {
		if w, ok := y.Get(k); !ok || w != v {
			return false
		}
	}
	return true
}

// EqualBloom is Equal for bloom maps.
func EqualBloom[K, V comparable](x, y *BloomMap[K, V]) bool {
	return Equal(&x.inner, &y.inner)
}

// String formats the map like a Go map, in insertion order: map[k:v ...].
func (m *Map[K, V]) String() string {
	return formatEntries(m.All())
}

func (b *BloomMap[K, V]) String() string {
	return formatEntries(b.inner.All())
}

// MarshalJSON encodes the map as a JSON object in insertion order.
// Keys that do not encode as JSON strings are quoted.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return marshalEntries(m.All())
}

func (b *BloomMap[K, V]) MarshalJSON() ([]byte, error) {
	return marshalEntries(b.inner.All())
}

func formatEntries[K comparable, V any](entries iter.Seq2[K, V]) string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range entries {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func marshalEntries[K comparable, V any](entries iter.Seq2[K, V]) ([]byte, error) {
	buf := []byte{'{'}
	var err error
	first := true
	for k, v := range entries {
		if !first {
			buf = append(buf, ',')
		}
		first = false

		if buf, err = appendKey(buf, k); err != nil {
			return nil, fmt.Errorf("hashmap: marshal key %v: %w", k, err)
		}
		buf = append(buf, ':')
		if buf, err = codec.Default.Append(buf, v); err != nil {
			return nil, fmt.Errorf("hashmap: marshal value for key %v: %w", k, err)
		}
	}
	return append(buf, '}'), nil
}

// appendKey appends k as a JSON string. Text marshalers supply their text;
// keys that do not encode as a JSON string are quoted.
func appendKey[K comparable](buf []byte, k K) ([]byte, error) {
	if tm, ok := any(k).(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return codec.Default.Append(buf, string(text))
	}
	b, err := codec.Default.Marshal(k)
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == '"' {
		return append(buf, b...), nil
	}
	return codec.Default.Append(buf, string(b))
}
