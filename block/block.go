// Package block implements BOI's block format: the seven prefix-coded
// block kinds of spec.md §4.1, their payload widths, and the
// two's-complement sign-extension helpers shared by all three pixel block
// kinds.
//
// The corpus generates an equivalent kind table at build time via a derive
// macro (original_source/macros/src/lib.rs, consumed by
// original_source/src/blocks.rs's `#[derive(BoiTyp)]`). spec.md's design
// notes ask implementations without that macro machinery to encode the
// table directly as a static lookup, which is what kindTable below does.
package block

import "github.com/nkashyap/boi/format"

// Block is a single prefix-coded unit: a value of BitCount bits, MSB
// first, ready to be appended to a bitstream.Writer.
type Block struct {
	Value    uint64
	BitCount int
}

// kindInfo describes one of the seven block kinds: its prefix code (the
// literal bit pattern, e.g. 0b1110 for Pixel-Long), the number of bits that
// prefix occupies, the payload width, and whether that width is multiplied
// by the channel count.
type kindInfo struct {
	kind         format.BlockKind
	code         uint64
	codeLen      int
	payloadWidth int
	usesChannels bool
}

var kindTable = [...]kindInfo{
	format.KindPixelShort:  {format.KindPixelShort, 0b00, 2, 4, true},
	format.KindPalette:     {format.KindPalette, 0b01, 2, 4, false},
	format.KindRepeat:      {format.KindRepeat, 0b100, 3, 6, false},
	format.KindGray:        {format.KindGray, 0b101, 3, 2, false},
	format.KindPixelMedium: {format.KindPixelMedium, 0b110, 3, 6, true},
	format.KindPixelLong:   {format.KindPixelLong, 0b1110, 4, 9, true},
	format.KindOffset:      {format.KindOffset, 0b1111, 4, 6, false},
}

// MaxRunLength is the largest run length a single Repeat block can encode
// (spec.md §4.1: payload 6 bits, stored as length-1, so length in [1,64]).
const MaxRunLength = 64

// PaletteSize is the fixed number of palette entries carried in every
// header (spec.md §3).
const PaletteSize = 16

// Prefix returns the literal prefix bit pattern and its bit length for
// kind.
func Prefix(kind format.BlockKind) (code uint64, codeLen int) {
	info := kindTable[kind]

	return info.code, info.codeLen
}

// PayloadWidth returns the total payload width in bits for kind, given the
// active channel count (only meaningful for the three pixel kinds; ignored
// otherwise).
func PayloadWidth(kind format.BlockKind, channels int) int {
	info := kindTable[kind]
	if info.usesChannels {
		return info.payloadWidth * channels
	}

	return info.payloadWidth
}

// ChannelWidth returns the per-channel payload width in bits for one of
// the three pixel block kinds.
func ChannelWidth(kind format.BlockKind) int {
	return kindTable[kind].payloadWidth
}

// New constructs a Block with no prefix bits: value, encoded in bitCount
// bits.
func New(bitCount int, value uint64) Block {
	return Block{Value: value & mask(bitCount), BitCount: bitCount}
}

// NewWithPrefix constructs a Block for kind with the given payload,
// concatenating the kind's prefix (MSB) with the payload (LSB) per
// spec.md §4.1 "Block" and the channel-ordering rule.
func NewWithPrefix(kind format.BlockKind, payloadBits int, payload uint64) Block {
	code, codeLen := Prefix(kind)
	value := (code << uint(payloadBits)) | (payload & mask(payloadBits))

	return Block{Value: value, BitCount: payloadBits + codeLen}
}

func mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(bits)) - 1
}

// SignExtend extends the w-bit two's-complement integer x (w in {4,6,9})
// to the signed 16-bit domain by arithmetic shift, per spec.md §4.1 "Sign
// extension": ((x << (N-w)) >> (N-w)).
func SignExtend(x uint64, w int) int16 {
	const n = 16
	shift := uint(n - w)

	return int16(x<<shift) >> shift
}

// Truncate masks a signed 16-bit delta down to its low w bits for
// insertion into a payload of that width. Values outside [-2^(w-1),
// 2^(w-1)-1] are not representable in w bits; callers must check
// InRange first.
func Truncate(x int16, w int) uint64 {
	return uint64(x) & mask(w)
}

// InRange reports whether x fits in a signed w-bit two's-complement field.
func InRange(x int16, w int) bool {
	half := int16(1) << uint(w-1)

	return x >= -half && x <= half-1
}

// WidthFor returns the narrowest of the three pixel block kinds
// (Pixel-Short, then Pixel-Medium, then Pixel-Long) whose per-channel
// range contains every active channel of delta, per spec.md §4.5 branch B
// step 3. Pixel-Long is always wide enough (9 bits holds any i16-i16 delta
// truncated mod 256).
func WidthFor(deltaMin, deltaMax int16) format.BlockKind {
	switch {
	case InRange(deltaMin, ChannelWidth(format.KindPixelShort)) && InRange(deltaMax, ChannelWidth(format.KindPixelShort)):
		return format.KindPixelShort
	case InRange(deltaMin, ChannelWidth(format.KindPixelMedium)) && InRange(deltaMax, ChannelWidth(format.KindPixelMedium)):
		return format.KindPixelMedium
	default:
		return format.KindPixelLong
	}
}
