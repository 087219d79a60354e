// Package pixel implements BOI's delta-pixel model: the forward/backward
// transform between raw byte pixels and signed per-channel deltas, and the
// 64-slot offset hash table used for short back-references.
//
// A Pixel always holds up to four channels (the maximum BOI supports); the
// active channel count is carried alongside it by callers rather than as a
// type parameter, since Go generics cannot express a compile-time array
// length. This mirrors the corpus's own preference for a single runtime
// specialization driven by an invariant channel count (see spec.md's
// "Compile-time channel specialization" design note) over hand duplication.
package pixel

// maxChannels is the largest channel count BOI supports (RGBA).
const maxChannels = 4

// OffsetSlots is the size of the direct-mapped offset hash table (spec.md
// §3 "Offset hash").
const OffsetSlots = 64

// Pixel is a signed per-channel delta: Data[i] = previous_byte[i] -
// current_byte[i]. Only the first Channels entries of Data are meaningful;
// the rest are always zero.
type Pixel struct {
	Data     [maxChannels]int16
	Channels int
}

// Zero returns the all-zero delta pixel for the given channel count.
func Zero(channels int) Pixel {
	return Pixel{Channels: channels}
}

// Equal reports whether p and q represent the same delta, comparing only
// the active channels.
func (p Pixel) Equal(q Pixel) bool {
	if p.Channels != q.Channels {
		return false
	}
	for i := 0; i < p.Channels; i++ {
		if p.Data[i] != q.Data[i] {
			return false
		}
	}

	return true
}

// ComputeForward computes the delta pixel encoded when moving from the
// previous raw pixel bytes to the current ones: delta[i] = previous[i] -
// current[i], per spec.md §3.
func ComputeForward(previous, current []byte, channels int) Pixel {
	var p Pixel
	p.Channels = channels
	for i := 0; i < channels; i++ {
		p.Data[i] = int16(previous[i]) - int16(current[i])
	}

	return p
}

// ComputeBackward reconstructs the current raw pixel bytes from the
// previous raw pixel bytes and a decoded delta: current[i] = (previous[i] -
// delta[i]) mod 256, written into dst (which must have length >=
// delta.Channels).
func ComputeBackward(previous []byte, delta Pixel, dst []byte) {
	for i := 0; i < delta.Channels; i++ {
		dst[i] = byte(int16(previous[i]) - delta.Data[i])
	}
}

// Hash computes the QOI-style offset-table slot for this delta:
// h = (3*d0 + 5*d1 + 7*d2 + 11*d3) mod 64, with channel terms past
// p.Channels treated as zero (spec.md §3 "Offset hash").
func (p Pixel) Hash() int {
	var weights = [maxChannels]int{3, 5, 7, 11}
	sum := 0
	for i := 0; i < p.Channels; i++ {
		sum += int(p.Data[i]) * weights[i]
	}
	// Go's % on a negative left operand returns a negative remainder;
	// normalize into [0, OffsetSlots) since channel deltas can be negative.
	h := sum % OffsetSlots
	if h < 0 {
		h += OffsetSlots
	}

	return h
}

// IsGray reports whether the delta is "gray": all color channels (the
// first three, ignoring alpha) are equal and fall in [-8, 7] (spec.md
// §4.4). Gray deltas are excluded from palette sampling.
func (p Pixel) IsGray() bool {
	const grayMin, grayMax = -8, 7
	if p.Data[0] != p.Data[1] || p.Data[1] != p.Data[2] {
		return false
	}

	return p.Data[0] >= grayMin && p.Data[0] <= grayMax
}

// Min returns the smallest of the active channel deltas.
func (p Pixel) Min() int16 {
	m := p.Data[0]
	for i := 1; i < p.Channels; i++ {
		if p.Data[i] < m {
			m = p.Data[i]
		}
	}

	return m
}

// Max returns the largest of the active channel deltas.
func (p Pixel) Max() int16 {
	m := p.Data[0]
	for i := 1; i < p.Channels; i++ {
		if p.Data[i] > m {
			m = p.Data[i]
		}
	}

	return m
}

// OffsetTable is the 64-slot direct-mapped cache of recently seen delta
// pixels, keyed by Pixel.Hash(). Both encoder and decoder maintain one and
// must update it identically for the format's back-references to agree
// (spec.md §3 invariant).
type OffsetTable struct {
	slots [OffsetSlots]Pixel
}

// NewOffsetTable returns a table with every slot initialized to the
// zero-pixel for the given channel count (spec.md §9 "Offset table init").
func NewOffsetTable(channels int) *OffsetTable {
	t := &OffsetTable{}
	zero := Zero(channels)
	for i := range t.slots {
		t.slots[i] = zero
	}

	return t
}

// Get returns the pixel currently stored at slot h.
func (t *OffsetTable) Get(h int) Pixel {
	return t.slots[h]
}

// Set stores p at slot h, evicting whatever was there before.
func (t *OffsetTable) Set(h int, p Pixel) {
	t.slots[h] = p
}
