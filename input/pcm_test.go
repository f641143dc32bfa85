package input

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestDecodePCM(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		raw    []byte
		want   []int32
	}{
		{"u8", FormatU8, []byte{0, 128, 255}, []int32{0, 128, 255}},
		{"s16", FormatS16, []byte{0xFF, 0x7F, 0x00, 0x80, 0xFF, 0xFF}, []int32{32767, -32768, -1}},
		{"s24 raw", FormatS24, []byte{0x00, 0x00, 0x80, 0xFF, 0xFF, 0x7F}, []int32{0x800000, 0x7FFFFF}},
		{"s32", FormatS32, []byte{0xFF, 0xFF, 0xFF, 0x7F, 0x00, 0x00, 0x00, 0x80}, []int32{math.MaxInt32, math.MinInt32}},
		{"partial", FormatS16, []byte{0x01, 0x00, 0x02}, []int32{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]int32, 8)
			n := DecodePCM(dst, tt.raw, tt.format)

			if n != len(tt.want) {
				t.Fatalf("DecodePCM() = %d, want %d", n, len(tt.want))
			}

			for i, v := range tt.want {
				if dst[i] != v {
					t.Fatalf("DecodePCM()[%d] = %d, want %d", i, dst[i], v)
				}
			}
		})
	}
}

func TestDecodePCMFloat(t *testing.T) {
	raw := make([]byte, 16)
	for i, v := range []float32{1, -1, 0.5, 3} {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}

	dst := make([]int32, 4)
	DecodePCM(dst, raw, FormatF32)

	want := []int32{math.MaxInt32, -math.MaxInt32, 1073741823, math.MaxInt32}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("DecodePCM()[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestDecodePCMBounds(t *testing.T) {
	dst := make([]int32, 1)
	if n := DecodePCM(dst, []byte{1, 0, 2, 0}, FormatS16); n != 1 {
		t.Fatalf("DecodePCM() = %d, want 1", n)
	}

	if n := DecodePCM(dst, []byte{1, 2}, FormatUnknown); n != 0 {
		t.Fatalf("DecodePCM(unknown) = %d, want 0", n)
	}
}
