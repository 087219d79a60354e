package codec

import (
	"fmt"

	"github.com/nkashyap/boi/bitstream"
	"github.com/nkashyap/boi/block"
	"github.com/nkashyap/boi/errs"
	"github.com/nkashyap/boi/format"
	"github.com/nkashyap/boi/internal/bufpool"
	"github.com/nkashyap/boi/palette"
	"github.com/nkashyap/boi/pixel"
)

// Encoder drives BOI's single-pass encode: per-pixel block selection with
// run coalescing, over a palette and offset table built once per image.
//
// An Encoder holds only allocation-tuning configuration (buffer pool,
// capacity hint). It carries no per-encode state between calls and may be
// reused for any number of images, unlike the teacher's NumericEncoder,
// which is single-use because it accumulates metrics across a session; BOI
// encode is always one-shot per image (spec.md §6).
type Encoder struct {
	cfg encodeConfig
}

// NewEncoder returns an Encoder configured by opts.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(&e.cfg)
	}

	return e
}

// Encode compresses raw (a tightly packed width*height*channels byte
// buffer) into a BOI stream.
func (e *Encoder) Encode(raw []byte, width, height int, channels format.Channels) ([]byte, error) {
	out, _, err := e.encode(raw, width, height, channels)
	return out, err
}

// EncodeWithStats behaves like Encode but also returns a histogram of the
// block kinds emitted, per original_source/src/encoder.rs's
// encode_with_logger.
func (e *Encoder) EncodeWithStats(raw []byte, width, height int, channels format.Channels) ([]byte, EncodeStats, error) {
	return e.encode(raw, width, height, channels)
}

func (e *Encoder) encode(raw []byte, width, height int, channels format.Channels) ([]byte, EncodeStats, error) {
	var stats EncodeStats

	totalPixels, err := validateDimensions(width, height, channels)
	if err != nil {
		return nil, stats, err
	}

	numChannels := int(channels)
	if len(raw) != totalPixels*numChannels {
		return nil, stats, fmt.Errorf("boi: encode: %w", errs.ErrInvalidPixelBufferLength)
	}

	paletteEntries := palette.Build(raw, numChannels)
	header := Header{
		Channels: channels,
		Width:    uint32(width),
		Height:   uint32(height),
		Palette:  palette.Pad(paletteEntries, numChannels),
	}

	pool := e.cfg.pool
	if pool == nil {
		pool = bufpool.Default
	}
	capacityHint := e.cfg.capacityHint
	if capacityHint <= 0 {
		capacityHint = totalPixels
	}

	w := bitstream.NewWriter(pool, capacityHint)
	writeHeader(w, header)

	offsets := pixel.NewOffsetTable(numChannels)
	prevChunk := make([]byte, numChannels)
	prevHash := pixel.Zero(numChannels).Hash()
	repeating := 0

	flushRepeat := func() {
		if repeating > 0 {
			w.Push(block.NewWithPrefix(format.KindRepeat, block.PayloadWidth(format.KindRepeat, numChannels), uint64(repeating-1)))
			stats.Repeat++
			repeating = 0
		}
	}

	for i := 0; i < totalPixels; i++ {
		current := raw[i*numChannels : i*numChannels+numChannels]
		d := pixel.ComputeForward(prevChunk, current, numChannels)
		h := d.Hash()

		if offsets.Get(prevHash).Equal(d) {
			// Branch A: this pixel continues the run established by the
			// previous iteration's delta. repeating counts pixels folded
			// into the run beyond the one already encoded; once it reaches
			// MaxRunLength the 6-bit length field can't grow further, so
			// flush a full-length Repeat block now and start counting the
			// next run segment at 1 (this pixel is the first member of it,
			// not dropped).
			if repeating < block.MaxRunLength {
				repeating++
			} else {
				w.Push(block.NewWithPrefix(format.KindRepeat, block.PayloadWidth(format.KindRepeat, numChannels), uint64(block.MaxRunLength-1)))
				stats.Repeat++
				repeating = 1
			}
		} else {
			// Branch B: the run (if any) ends here; emit it, then encode
			// this pixel by priority: Palette, Offset, Pixel-Short/Medium/Long.
			flushRepeat()

			if idx, ok := palette.Lookup(paletteEntries, d); ok {
				w.Push(block.NewWithPrefix(format.KindPalette, block.PayloadWidth(format.KindPalette, numChannels), uint64(idx)))
				stats.Palette++
			} else if offsets.Get(h).Equal(d) {
				w.Push(block.NewWithPrefix(format.KindOffset, block.PayloadWidth(format.KindOffset, numChannels), uint64(h)))
				stats.Offset++
			} else {
				b, kind := block.EncodePixel(d)
				w.Push(b)
				switch kind {
				case format.KindPixelShort:
					stats.PixelShort++
				case format.KindPixelMedium:
					stats.PixelMedium++
				default:
					stats.PixelLong++
				}
			}
		}

		offsets.Set(h, d)
		prevHash = h
		prevChunk = current
	}
	flushRepeat()

	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	w.Release(pool)

	return out, stats, nil
}

// Encode is a package-level convenience wrapping NewEncoder().Encode, for
// callers with no tuning needs.
func Encode(raw []byte, width, height int, channels format.Channels, opts ...Option) ([]byte, error) {
	return NewEncoder(opts...).Encode(raw, width, height, channels)
}

// EncodeWithStats is the package-level convenience form of
// Encoder.EncodeWithStats.
func EncodeWithStats(raw []byte, width, height int, channels format.Channels, opts ...Option) ([]byte, EncodeStats, error) {
	return NewEncoder(opts...).EncodeWithStats(raw, width, height, channels)
}
