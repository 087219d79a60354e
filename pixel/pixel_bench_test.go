package pixel

import "testing"

func BenchmarkComputeForward(b *testing.B) {
	previous := []byte{10, 20, 30, 255}
	current := []byte{12, 18, 29, 255}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ComputeForward(previous, current, 4)
	}
}

func BenchmarkPixel_Hash(b *testing.B) {
	p := Pixel{Data: [maxChannels]int16{1, -2, 3, -4}, Channels: 4}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Hash()
	}
}

func BenchmarkOffsetTable_SetGet(b *testing.B) {
	tbl := NewOffsetTable(4)
	p := Pixel{Data: [maxChannels]int16{1, 2, 3, 4}, Channels: 4}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tbl.Set(i%OffsetSlots, p)
		_ = tbl.Get(i % OffsetSlots)
	}
}
