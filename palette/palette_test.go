package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkashyap/boi/block"
	"github.com/nkashyap/boi/pixel"
)

func TestBuild_EmptyInput(t *testing.T) {
	entries := Build(nil, 4)
	assert.Empty(t, entries)
}

func TestBuild_CapsAtPaletteSize(t *testing.T) {
	channels := 3
	windowSize := channels * 2
	step := windowSize * 50

	// Build raw data with 20 distinct, non-gray, reproducible deltas at
	// each sample point so the histogram has more than 16 candidates.
	raw := make([]byte, step*20+windowSize)
	for i := 0; i < 20; i++ {
		off := i * step
		raw[off+0], raw[off+1], raw[off+2] = 0, 0, 0
		raw[off+channels+0] = byte(20 + i*5)
		raw[off+channels+1] = byte(10 + i*3)
		raw[off+channels+2] = byte(5 + i)
	}

	entries := Build(raw, channels)
	assert.LessOrEqual(t, len(entries), block.PaletteSize)
}

func TestBuild_ExcludesGrayDeltas(t *testing.T) {
	channels := 3
	windowSize := channels * 2
	step := windowSize * 50

	raw := make([]byte, step*2+windowSize)
	// Sample 0: a gray delta (all channels step by the same small amount).
	raw[0], raw[1], raw[2] = 10, 10, 10
	raw[channels+0], raw[channels+1], raw[channels+2] = 15, 15, 15

	// Sample 1: a non-gray delta.
	off := step
	raw[off+0], raw[off+1], raw[off+2] = 0, 0, 0
	raw[off+channels+0], raw[off+channels+1], raw[off+channels+2] = 100, 5, 200

	entries := Build(raw, channels)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsGray())
}

func TestBuild_TieBreakIsFirstInsertionOrder(t *testing.T) {
	channels := 3
	windowSize := channels * 2
	step := windowSize * 50

	// Two distinct non-gray deltas, each sampled exactly once: equal
	// frequency, so the stable sort must preserve encounter order.
	raw := make([]byte, step*2+windowSize)
	raw[0], raw[1], raw[2] = 0, 0, 0
	raw[channels+0], raw[channels+1], raw[channels+2] = 50, 10, 90

	off := step
	raw[off+0], raw[off+1], raw[off+2] = 0, 0, 0
	raw[off+channels+0], raw[off+channels+1], raw[off+channels+2] = 90, 10, 50

	entries := Build(raw, channels)
	require.Len(t, entries, 2)

	first := pixel.ComputeForward(raw[0:channels], raw[channels:windowSize], channels)
	assert.True(t, entries[0].Equal(first))
}

func TestPad_FillsWithZeroWhenEmpty(t *testing.T) {
	padded := Pad(nil, 4)
	for _, p := range padded {
		assert.True(t, p.Equal(pixel.Zero(4)))
	}
}

func TestPad_FillsWithLastEntry(t *testing.T) {
	entries := []pixel.Pixel{
		{Data: [4]int16{1, 0, 0, 0}, Channels: 4},
		{Data: [4]int16{2, 0, 0, 0}, Channels: 4},
	}
	padded := Pad(entries, 4)

	assert.True(t, padded[0].Equal(entries[0]))
	assert.True(t, padded[1].Equal(entries[1]))
	for i := 2; i < block.PaletteSize; i++ {
		assert.True(t, padded[i].Equal(entries[1]))
	}
}

func TestLookup(t *testing.T) {
	entries := []pixel.Pixel{
		{Data: [4]int16{1, 0, 0, 0}, Channels: 4},
		{Data: [4]int16{2, 0, 0, 0}, Channels: 4},
	}

	idx, ok := Lookup(entries, entries[1])
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = Lookup(entries, pixel.Pixel{Data: [4]int16{9, 9, 9, 9}, Channels: 4})
	assert.False(t, ok)
}
