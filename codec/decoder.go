package codec

import (
	"fmt"

	"github.com/nkashyap/boi/bitstream"
	"github.com/nkashyap/boi/block"
	"github.com/nkashyap/boi/errs"
	"github.com/nkashyap/boi/format"
	"github.com/nkashyap/boi/pixel"
)

// Decode reconstructs the raw tightly packed pixel buffer encoded in raw,
// along with its width and height. The channel count is recovered from the
// stream's leading alpha-flag bit rather than returned explicitly (spec.md
// §6); callers can recover it as len(bytes)/(width*height) when needed.
func Decode(raw []byte) (bytes []byte, width int, height int, err error) {
	bytes, width, height, _, err = decode(raw, false)
	return bytes, width, height, err
}

// DecodeWithStats behaves like Decode but also returns a histogram of the
// block kinds encountered in the stream, the decode-side counterpart to
// EncodeWithStats. cmd/boicat uses this to inspect a stream without
// re-encoding it.
func DecodeWithStats(raw []byte) (bytes []byte, width int, height int, stats EncodeStats, err error) {
	return decode(raw, true)
}

func decode(raw []byte, collectStats bool) (outBytes []byte, width int, height int, stats EncodeStats, err error) {
	r := bitstream.NewReader(raw)

	header, err := readHeader(r)
	if err != nil {
		return nil, 0, 0, stats, fmt.Errorf("boi: decode header: %w", err)
	}

	width = int(header.Width)
	height = int(header.Height)
	numChannels := int(header.Channels)

	totalPixels, err := validateDimensions(width, height, header.Channels)
	if err != nil {
		return nil, 0, 0, stats, err
	}

	out := make([]byte, totalPixels*numChannels)
	offsets := pixel.NewOffsetTable(numChannels)
	prevBytes := make([]byte, numChannels)
	prevDelta := pixel.Zero(numChannels)
	count := 0

	for count < totalPixels {
		kind, err := r.NextCode()
		if err != nil {
			return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, err)
		}

		switch kind {
		case format.KindPixelShort, format.KindPixelMedium, format.KindPixelLong:
			payload, err := r.NextBits(block.PayloadWidth(kind, numChannels))
			if err != nil {
				return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, err)
			}
			d := block.DecodePixel(kind, payload, numChannels)
			dst := out[count*numChannels : count*numChannels+numChannels]
			pixel.ComputeBackward(prevBytes, d, dst)
			offsets.Set(d.Hash(), d)
			prevBytes = dst
			prevDelta = d
			count++
			if collectStats {
				switch kind {
				case format.KindPixelShort:
					stats.PixelShort++
				case format.KindPixelMedium:
					stats.PixelMedium++
				default:
					stats.PixelLong++
				}
			}

		case format.KindPalette:
			payload, err := r.NextBits(block.PayloadWidth(kind, numChannels))
			if err != nil {
				return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, err)
			}
			if int(payload) >= block.PaletteSize {
				return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, errs.ErrPaletteIndexOutOfRange)
			}
			d := header.Palette[payload]
			dst := out[count*numChannels : count*numChannels+numChannels]
			pixel.ComputeBackward(prevBytes, d, dst)
			offsets.Set(d.Hash(), d)
			prevBytes = dst
			prevDelta = d
			count++
			if collectStats {
				stats.Palette++
			}

		case format.KindOffset:
			payload, err := r.NextBits(block.PayloadWidth(kind, numChannels))
			if err != nil {
				return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, err)
			}
			d := offsets.Get(int(payload))
			dst := out[count*numChannels : count*numChannels+numChannels]
			pixel.ComputeBackward(prevBytes, d, dst)
			prevBytes = dst
			prevDelta = d
			count++
			if collectStats {
				stats.Offset++
			}

		case format.KindRepeat:
			payload, err := r.NextBits(block.PayloadWidth(kind, numChannels))
			if err != nil {
				return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, err)
			}
			n := int(payload) + 1
			if count+n > totalPixels {
				return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, errs.ErrDimensionMismatch)
			}
			// A run repeats the previous delta, not the previous bytes.
			for k := 0; k < n; k++ {
				dst := out[count*numChannels : count*numChannels+numChannels]
				pixel.ComputeBackward(prevBytes, prevDelta, dst)
				prevBytes = dst
				count++
			}
			if collectStats {
				stats.Repeat++
			}

		case format.KindGray:
			return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, errs.ErrReservedBlockKind)

		default:
			return nil, 0, 0, stats, fmt.Errorf("boi: decode block %d: %w", count, errs.ErrUnknownPrefix)
		}
	}

	if count != totalPixels {
		return nil, 0, 0, stats, errs.ErrDimensionMismatch
	}

	return out, width, height, stats, nil
}
