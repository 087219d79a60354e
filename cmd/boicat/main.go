// Command boicat inspects a BOI-encoded file: its header and the
// histogram of block kinds in its body.
//
// Usage:
//
//	boicat <input.boi>
package main

import (
	"fmt"
	"os"

	"github.com/nkashyap/boi/codec"
	"github.com/nkashyap/boi/internal/fingerprint"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: boicat <input.boi>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "boicat: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	pixels, width, height, stats, err := codec.DecodeWithStats(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	channels := 0
	if width*height > 0 {
		channels = len(pixels) / (width * height)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Dimensions: %d x %d\n", width, height)
	fmt.Printf("Channels:   %d\n", channels)
	fmt.Printf("Stream:     %d bytes\n", len(data))
	fmt.Printf("Pixel ID:   %016x\n", fingerprint.ID(pixels))
	fmt.Printf("Blocks:     %d total\n", stats.Total())
	fmt.Printf("  PixelShort:  %d\n", stats.PixelShort)
	fmt.Printf("  PixelMedium: %d\n", stats.PixelMedium)
	fmt.Printf("  PixelLong:   %d\n", stats.PixelLong)
	fmt.Printf("  Palette:     %d\n", stats.Palette)
	fmt.Printf("  Offset:      %d\n", stats.Offset)
	fmt.Printf("  Repeat:      %d\n", stats.Repeat)

	return nil
}
