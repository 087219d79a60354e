package codec

import (
	"testing"

	"github.com/nkashyap/boi/format"
)

func BenchmarkEncode_Gradient(b *testing.B) {
	raw := gradientImage(256, 256, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Encode(raw, 256, 256, format.RGB)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_Gradient(b *testing.B) {
	raw := gradientImage(256, 256, 3)
	encoded, err := Encode(raw, 256, 256, format.RGB)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
