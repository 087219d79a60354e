package block

import (
	"github.com/nkashyap/boi/format"
	"github.com/nkashyap/boi/pixel"
)

// EncodePixel builds the smallest Pixel-* block (Short, Medium, or Long)
// whose range contains every active channel of delta, per spec.md §4.5
// branch B step 3, and reports which of the three kinds it chose. Channel 0
// occupies the most significant payload bits; channel C-1 the least
// significant (spec.md §4.1 "Channel ordering").
func EncodePixel(delta pixel.Pixel) (Block, format.BlockKind) {
	kind := WidthFor(delta.Min(), delta.Max())
	w := ChannelWidth(kind)

	var payload uint64
	for i := 0; i < delta.Channels; i++ {
		payload = (payload << uint(w)) | Truncate(delta.Data[i], w)
	}

	return NewWithPrefix(kind, w*delta.Channels, payload), kind
}

// DecodePixel reconstructs a delta pixel from a Pixel-* block's raw
// payload, given the block kind (which fixes the per-channel width) and
// the active channel count.
func DecodePixel(kind format.BlockKind, payload uint64, channels int) pixel.Pixel {
	w := ChannelWidth(kind)
	mask64 := mask(w)

	var p pixel.Pixel
	p.Channels = channels
	for i := 0; i < channels; i++ {
		shift := uint((channels - i - 1) * w)
		raw := (payload >> shift) & mask64
		p.Data[i] = SignExtend(raw, w)
	}

	return p
}
