package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int32
}

func TestOf_EqualKeysHashEqually(t *testing.T) {
	// Build the second string at runtime so the two do not share storage
	b := []byte("parent")
	assert.Equal(t, Of("parent"), Of(string(b)))
	assert.Equal(t, Of(uint64(42)), Of(uint64(42)))
	assert.Equal(t, Of(point{1, 2}), Of(point{1, 2}))
}

func TestOf_Spread(t *testing.T) {
	seen := make(map[uint64]struct{})
	for i := 0; i < 10000; i++ {
		seen[Of(i)] = struct{}{}
	}
	// 64-bit hashes of distinct small ints should not collide
	assert.Len(t, seen, 10000)

	// Low bits pick the bucket; they must vary too
	low := make(map[uint64]struct{})
	for i := 0; i < 1000; i++ {
		low[Of(i)&1023] = struct{}{}
	}
	assert.Greater(t, len(low), 500)
}
