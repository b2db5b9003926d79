//go:build unix || windows

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaOffHeapPages(t *testing.T) {
	a := New(WithPageSize(4096), WithOffHeapPages())

	xs := AllocSlice[uint32](a, 100)
	for i := range xs {
		xs[i] = uint32(i)
	}
	big := a.AllocBytes(3 * 4096)
	big[len(big)-1] = 1

	assert.Equal(t, 2, a.NumPages())
	for _, p := range a.pages {
		assert.NotNil(t, p.mapping)
	}
	assert.Equal(t, uint32(99), xs[99])

	a.Release()
	assert.ErrorIs(t, recoverErr(func() { a.AllocBytes(1) }), ErrReleased)
}
