package hashmap

import (
	"fmt"
	"slices"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/internal/bloom"
	"github.com/pavanmanishd/arena/v2/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloomMap_NestedValues(t *testing.T) {
	a := arena.New()
	defer a.Release()

	b := NewBloom[string, value]()
	child := arena.Alloc(a, integer(42))
	b.Insert(a, "child", *child)
	b.Insert(a, "parent", nested(child))

	got, ok := b.Get("child")
	require.True(t, ok)
	assert.Equal(t, integer(42), got)

	got, ok = b.Get("parent")
	require.True(t, ok)
	require.NotNil(t, got.nested)
	assert.Equal(t, integer(42), *got.nested)

	_, ok = b.Get("heh")
	assert.False(t, ok)
}

func TestBloomMap_NoFalseNegatives(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var b BloomMap[string, int]
	inserted := make(map[string]bool)
	for i := 0; i < 500; i += 3 {
		k := fmt.Sprintf("k%d", i)
		b.Insert(a, k, i)
		inserted[k] = true
	}

	for i := 0; i < 500; i++ {
		k := fmt.Sprintf("k%d", i)
		if inserted[k] {
			assert.True(t, b.MayContain(k), k)
			v, ok := b.Get(k)
			require.True(t, ok, k)
			assert.Equal(t, i, v)
			continue
		}
		// The filter may say yes; the table must still say no
		assert.False(t, b.Contains(k), k)
	}
}

func TestBloomMap_FilterRejectsBeforeProbe(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var b BloomMap[string, int]
	assert.False(t, b.MayContain("anything"))

	b.Insert(a, "alloc", 1)
	b.Insert(a, "Cell", 2)

	rejected := 0
	for _, w := range []string{"Arena", "String", "Vec", "block", "grow", "push", "slice", "store"} {
		if !b.MayContain(w) {
			rejected++
			assert.False(t, b.Contains(w))
		}
	}
	// Two keys set at most six of 64 bits
	assert.Greater(t, rejected, 0)
}

func TestBloomMap_LookupsSkipTableWhenFilterRejects(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var b BloomMap[string, int]
	b.Insert(a, "alloc", 1)
	require.True(t, b.inner.Contains("alloc"))

	// With the filter cleared the entry is still in the table, but every
	// lookup must answer from the filter alone
	b.filter.Set(0)
	assert.False(t, b.MayContain("alloc"))
	assert.False(t, b.Contains("alloc"))
	_, ok := b.Get("alloc")
	assert.False(t, ok)
	_, ok = b.GetKey("alloc")
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())

	b.filter.Set(bloom.Mask(hash.Of("alloc")))
	v, ok := b.Get("alloc")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestBloomMap_Overwrite(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var b BloomMap[string, int]
	b.Insert(a, "x", 1)
	old, replaced := b.Insert(a, "x", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, old)
	assert.Equal(t, 1, b.Len())

	k, ok := b.GetKey("x")
	require.True(t, ok)
	assert.Equal(t, "x", k)
}

func TestBloomMap_Growth(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var b BloomMap[int, int]
	for i := 0; i < 300; i++ {
		b.Insert(a, i, -i)
	}
	assert.Equal(t, 300, b.Len())
	assert.Greater(t, b.Cap(), minCapacity)
	for i := 0; i < 300; i++ {
		v, ok := b.Get(i)
		require.True(t, ok)
		assert.Equal(t, -i, v)
	}
}

func TestBloomMap_Clear(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var b BloomMap[string, int]
	b.Insert(a, "a", 1)
	b.Clear()

	assert.True(t, b.IsEmpty())
	assert.False(t, b.MayContain("a"))
	assert.False(t, b.Contains("a"))
}

func TestFromMap(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var m Map[string, int]
	for i, k := range []string{"one", "two", "three"} {
		m.Insert(a, k, i+1)
	}

	b := FromMap(&m)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"one", "two", "three"}, slices.Collect(b.Keys()))
	for k := range b.Keys() {
		assert.True(t, b.MayContain(k))
	}

	v, ok := b.Get("two")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	// The moved-from map is independent and usable again
	m.Insert(a, "four", 4)
	assert.False(t, b.Contains("four"))

	back := b.IntoMap()
	assert.True(t, b.IsEmpty())
	assert.False(t, b.MayContain("one"))
	assert.Equal(t, 3, back.Len())
	v, ok = back.Get("three")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestEqualBloom(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var x, y BloomMap[int, string]
	x.Insert(a, 1, "a")
	y.Insert(a, 1, "a")
	assert.True(t, EqualBloom(&x, &y))

	y.Insert(a, 2, "b")
	assert.False(t, EqualBloom(&x, &y))
}

func TestBloomMap_Format(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var b BloomMap[string, int]
	b.Insert(a, "foo", 1)
	b.Insert(a, "bar", 2)
	assert.Equal(t, "map[foo:1 bar:2]", b.String())

	out, err := json.Marshal(&b)
	require.NoError(t, err)
	assert.Equal(t, `{"foo":1,"bar":2}`, string(out))
}
