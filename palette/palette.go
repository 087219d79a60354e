// Package palette builds and queries the BOI palette: the up-to-16
// frequently occurring delta pixels sampled from the image histogram
// (spec.md §4.4).
package palette

import (
	"sort"

	"github.com/nkashyap/boi/block"
	"github.com/nkashyap/boi/pixel"
)

// sampleFrequency is spec.md §4.4's SAMPLE_FREQUENCY constant.
const sampleFrequency = 100

// Build samples raw (a width*height*channels raw pixel buffer) and
// returns up to block.PaletteSize delta pixels ordered by descending
// sampled frequency, ties broken by first-insertion order, per spec.md
// §4.4.
//
// Determinism is obtained by tracking first-insertion order explicitly (a
// plain slice, appended to only the first time a delta is seen) rather
// than relying on Go map iteration order, then applying a stable sort on
// descending count: ties keep their original relative order.
func Build(raw []byte, channels int) []pixel.Pixel {
	step := channels * 2 * (sampleFrequency / 2)
	windowSize := channels * 2

	counts := make(map[pixel.Pixel]int)
	order := make([]pixel.Pixel, 0, 64)

	for i := 0; i+windowSize <= len(raw); i += step {
		first := raw[i : i+channels]
		second := raw[i+channels : i+windowSize]
		d := pixel.ComputeForward(first, second, channels)
		if d.IsGray() {
			continue
		}
		if _, seen := counts[d]; !seen {
			order = append(order, d)
		}
		counts[d]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > block.PaletteSize {
		order = order[:block.PaletteSize]
	}

	return order
}

// Pad expands entries (which may hold fewer than block.PaletteSize
// colors) to exactly block.PaletteSize entries by repeating the last
// entry, or the zero pixel if entries is empty, per spec.md §3 "Header"
// and §9 "Palette-padding ambiguity": decoders always parse a fixed count
// of 16 palette entries, so encoders must pad before serializing.
func Pad(entries []pixel.Pixel, channels int) [16]pixel.Pixel {
	var padded [16]pixel.Pixel

	fill := pixel.Zero(channels)
	if len(entries) > 0 {
		fill = entries[len(entries)-1]
	}
	for i := range padded {
		if i < len(entries) {
			padded[i] = entries[i]
		} else {
			padded[i] = fill
		}
	}

	return padded
}

// Lookup returns the index of delta within entries, or ok=false if it is
// not present. The palette is small (<=16 entries) so a linear scan is
// used, matching spec.md §4.4's Palette.get.
func Lookup(entries []pixel.Pixel, delta pixel.Pixel) (int, bool) {
	for i, p := range entries {
		if p.Equal(delta) {
			return i, true
		}
	}

	return 0, false
}
