package codec

// EncodeStats is a per-block-kind histogram of an Encode call, matching
// original_source/src/encoder.rs's encode_with_logger counters. It adds no
// overhead to Encode beyond the counters themselves; EncodeWithStats runs
// the identical single-pass loop as Encode.
type EncodeStats struct {
	PixelShort  int
	PixelMedium int
	PixelLong   int
	Palette     int
	Offset      int
	Repeat      int
}

// Total returns the number of blocks the encoder emitted.
func (s EncodeStats) Total() int {
	return s.PixelShort + s.PixelMedium + s.PixelLong + s.Palette + s.Offset + s.Repeat
}
