//go:build unix || windows

package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon_ReadWriteClose(t *testing.T) {
	m, err := MapAnon(1 << 16)
	require.NoError(t, err)

	data := m.Bytes()
	require.Len(t, data, 1<<16)
	assert.Equal(t, 1<<16, m.Size())

	// Fresh anonymous memory is zeroed
	for i := 0; i < len(data); i += 4096 {
		assert.Zero(t, data[i])
	}

	data[0] = 0xAB
	data[len(data)-1] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[len(data)-1])

	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())

	// Idempotent
	require.NoError(t, m.Close())
}

func TestMapAnon_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		m, err := MapAnon(size)
		assert.ErrorIs(t, err, ErrInvalidSize)
		assert.Nil(t, m)
	}
}
