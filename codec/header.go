package codec

import (
	"github.com/nkashyap/boi/bitstream"
	"github.com/nkashyap/boi/block"
	"github.com/nkashyap/boi/errs"
	"github.com/nkashyap/boi/format"
	"github.com/nkashyap/boi/pixel"
)

// Header carries everything a BOI stream's body depends on: the channel
// count (recovered from the single alpha-flag bit), the image dimensions,
// and the 16-entry palette. Kept separate from Encoder/Decoder so the
// header can be parsed and round-tripped on its own, and because a decoder
// must know the channel count before it can run the body's per-pixel loop.
//
// This split mirrors original_source/src/img.rs's Image/Header separation,
// which the distilled spec.md folds into a single "Header" section (§3).
type Header struct {
	Channels format.Channels
	Width    uint32
	Height   uint32
	Palette  [block.PaletteSize]pixel.Pixel
}

// writeHeader serializes h to w: a 1-bit alpha flag, two 32-bit dimensions,
// and 16 palette entries each forced into Pixel-Long block form (4-bit
// prefix 1110 + 9*channels payload), regardless of whether a narrower pixel
// kind would fit the value. spec.md §3 fixes this width so header parsing
// never has to try multiple kinds.
func writeHeader(w *bitstream.Writer, h Header) {
	alpha := uint64(0)
	if h.Channels.HasAlpha() {
		alpha = 1
	}
	w.Push(block.New(1, alpha))
	w.Push(block.New(32, uint64(h.Width)))
	w.Push(block.New(32, uint64(h.Height)))

	channels := int(h.Channels)
	payloadWidth := block.ChannelWidth(format.KindPixelLong) * channels
	for _, p := range h.Palette {
		var payload uint64
		for i := 0; i < channels; i++ {
			payload = (payload << 9) | block.Truncate(p.Data[i], 9)
		}
		w.Push(block.NewWithPrefix(format.KindPixelLong, payloadWidth, payload))
	}
}

// readHeader parses a Header from r, including the channel-determining
// alpha flag. The returned Header.Channels must be used for every
// subsequent NextBits/NextCode call against r.
func readHeader(r *bitstream.Reader) (Header, error) {
	var h Header

	alpha, err := r.NextBits(1)
	if err != nil {
		return h, err
	}
	if alpha == 1 {
		h.Channels = format.RGBA
	} else {
		h.Channels = format.RGB
	}
	channels := int(h.Channels)

	width, err := r.NextBits(32)
	if err != nil {
		return h, err
	}
	h.Width = uint32(width)

	height, err := r.NextBits(32)
	if err != nil {
		return h, err
	}
	h.Height = uint32(height)

	for i := range h.Palette {
		kind, err := r.NextCode()
		if err != nil {
			return h, err
		}
		if kind != format.KindPixelLong {
			return h, errs.ErrUnknownPrefix
		}

		payload, err := r.NextBits(block.PayloadWidth(kind, channels))
		if err != nil {
			return h, err
		}
		h.Palette[i] = block.DecodePixel(kind, payload, channels)
	}

	return h, nil
}
