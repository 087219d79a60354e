package boi

import (
	"github.com/nkashyap/boi/codec"
	"github.com/nkashyap/boi/format"
)

// Channels re-exports format.Channels so callers need not import the
// format package for the common case.
type Channels = format.Channels

const (
	RGB  = format.RGB
	RGBA = format.RGBA
)

// EncodeStats re-exports codec.EncodeStats for callers of EncodeWithStats.
type EncodeStats = codec.EncodeStats

// Encode compresses raw (a tightly packed width*height*channels byte
// buffer, row-major, top-left first) into a BOI stream.
//
// Parameters:
//   - raw: pixel bytes, length must equal width*height*channels
//   - width, height: image dimensions in pixels
//   - channels: format.RGB or format.RGBA
//   - opts: optional tuning knobs (codec.WithBufferPool, codec.WithCapacityHint)
func Encode(raw []byte, width, height int, channels Channels, opts ...codec.Option) ([]byte, error) {
	return codec.Encode(raw, width, height, channels, opts...)
}

// EncodeWithStats behaves like Encode but also returns a histogram of the
// block kinds the encoder emitted.
func EncodeWithStats(raw []byte, width, height int, channels Channels, opts ...codec.Option) ([]byte, EncodeStats, error) {
	return codec.EncodeWithStats(raw, width, height, channels, opts...)
}

// Decode reconstructs the raw pixel buffer from a BOI stream, along with
// its width and height. The channel count is recovered from the stream
// itself; callers can derive it as len(bytes)/(width*height) when needed.
func Decode(raw []byte) (bytes []byte, width int, height int, err error) {
	return codec.Decode(raw)
}
