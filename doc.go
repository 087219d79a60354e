// Package boi provides a lossless image codec built around a bit-packed
// delta-pixel stream: no entropy coding, no lossy modes, a single
// synchronous pass over the pixel buffer in both directions.
//
// # Core design
//
//   - Seven prefix-coded block kinds (Pixel-Short/Medium/Long, Palette,
//     Repeat, Offset, and the reserved Gray) chosen per pixel by a fixed
//     priority: palette hit, then recent-pixel back-reference, then the
//     narrowest delta encoding that fits.
//   - A 64-slot QOI-style hash table of recently seen delta pixels, shared
//     in lockstep by encoder and decoder.
//   - A ≤16-entry palette sampled from the image's own histogram and frozen
//     into the header.
//
// # Basic usage
//
//	encoded, err := boi.Encode(pixels, width, height, format.RGBA)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, w, h, err := boi.Decode(encoded)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// This package provides convenient top-level wrappers around the codec
// package, which is where the Encoder type, the Decode functions and the
// encoder's tuning options (codec.WithBufferPool, codec.WithCapacityHint)
// live; Encode and EncodeWithStats here pass those options through.
package boi
