package boi

import "testing"

// FuzzRoundTrip asserts the codec's core invariant under arbitrary input:
// for any raw buffer whose length is a multiple of 3 (RGB) or 4 (RGBA),
// decode(encode(raw)) reproduces raw exactly, or Encode itself rejects the
// input (e.g. a width/height pair that doesn't match the buffer length).
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0}, 3, 3, uint8(3))
	f.Add([]byte{255, 0, 128, 1, 2, 3, 250, 250, 250, 10, 20, 30}, 2, 2, uint8(3))
	f.Add([]byte{0, 0, 0, 0, 255, 255, 255, 255}, 1, 1, uint8(4))
	f.Add(make([]byte, 300), 10, 10, uint8(3))
	f.Add([]byte{1, 2, 3}, 1, 1, uint8(3))

	f.Fuzz(func(t *testing.T, raw []byte, width, height int, channelByte uint8) {
		channels := Channels(channelByte)
		if !channels.Valid() {
			return
		}
		if width <= 0 || height <= 0 || width > 4096 || height > 4096 {
			return
		}
		if len(raw) != width*height*int(channels) {
			return
		}

		encoded, err := Encode(raw, width, height, channels)
		if err != nil {
			return
		}

		decoded, gotWidth, gotHeight, err := Decode(encoded)
		if err != nil {
			t.Fatalf("decode failed on encoder output: %v", err)
		}
		if gotWidth != width || gotHeight != height {
			t.Fatalf("dimensions changed: got %dx%d, want %dx%d", gotWidth, gotHeight, width, height)
		}
		if len(decoded) != len(raw) {
			t.Fatalf("decoded length %d != input length %d", len(decoded), len(raw))
		}
		for i := range raw {
			if decoded[i] != raw[i] {
				t.Fatalf("byte %d mismatch: got %d, want %d", i, decoded[i], raw[i])
			}
		}
	})
}
