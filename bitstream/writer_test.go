package bitstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkashyap/boi/block"
	"github.com/nkashyap/boi/internal/bufpool"
)

func TestWriter_PushSingleByteAligned(t *testing.T) {
	w := NewWriter(nil, 0)
	w.Push(block.New(8, 0xAB))

	assert.Equal(t, []byte{0xAB}, w.Bytes())
	assert.Equal(t, 1, w.Len())
}

func TestWriter_PushAcrossByteBoundary(t *testing.T) {
	w := NewWriter(nil, 0)
	w.Push(block.New(4, 0b1010))
	w.Push(block.New(4, 0b0101))

	assert.Equal(t, []byte{0b10100101}, w.Bytes())
}

func TestWriter_PushSpanningMultipleBytes(t *testing.T) {
	w := NewWriter(nil, 0)
	w.Push(block.New(4, 0b1111))
	w.Push(block.New(12, 0x0AB))

	// tail nibble 1111, then 000010101011 spans the rest: byte0 = 1111_0000,
	// byte1 = 1010_1011.
	assert.Equal(t, []byte{0b11110000, 0b10101011}, w.Bytes())
}

func TestWriter_PushZeroBitCountIsNoop(t *testing.T) {
	w := NewWriter(nil, 0)
	w.Push(block.New(8, 0xFF))
	w.Push(block.New(0, 0xFF))

	assert.Equal(t, []byte{0xFF}, w.Bytes())
}

func TestWriter_PushPanicsOnOversizedBlock(t *testing.T) {
	w := NewWriter(nil, 0)
	require.Panics(t, func() {
		w.Push(block.New(57, 0))
	})
}

func TestWriter_ReleaseReturnsBufferToPool(t *testing.T) {
	pool := bufpool.NewPool(16)
	w := NewWriter(pool, 16)
	w.Push(block.New(8, 1))
	w.Release(pool)

	reused := pool.Get(16)
	assert.Equal(t, 0, reused.Len(), "a released buffer comes back reset")
}
