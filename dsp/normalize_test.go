package dsp

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-6

func TestNormalizeExtremes(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		in    int32
		want  float64
	}{
		{"u8 min", 8, 0, -128.0 / 127.0},
		{"u8 mid", 8, 128, 0},
		{"u8 max", 8, 255, 1},
		{"s16 min", 16, -32768, -1},
		{"s16 max", 16, 32767, 32767.0 / 32768.0},
		{"s24 min", 24, -8388608, -8388608.0 / 8388607.0},
		{"s24 max", 24, 8388607, 1},
		{"s32 min", 32, math.MinInt32, -2147483648.0 / 2147483647.0},
		{"s32 max", 32, math.MaxInt32, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in, tt.depth)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if math.Abs(got-tt.want) > tolerance {
				t.Fatalf("Normalize(%d, %d) = %v, want %v", tt.in, tt.depth, got, tt.want)
			}
		})
	}
}

func TestNormalize16BitReference(t *testing.T) {
	got, _ := Normalize(32767, 16)
	if math.Abs(got-0.99997) > 1e-5 {
		t.Fatalf("Normalize(32767, 16) = %v, want ~0.99997", got)
	}

	got, _ = Normalize(-32768, 16)
	if got != -1.0 {
		t.Fatalf("Normalize(-32768, 16) = %v, want -1", got)
	}
}

func TestNormalize24BitSignExtension(t *testing.T) {
	// Packed 24-bit values arrive with bit 23 set and nothing above it.
	got, err := Normalize(0x800000, 24)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got >= 0 {
		t.Fatalf("Normalize(0x800000, 24) = %v, want negative", got)
	}

	got, _ = Normalize(0xFFFFFF, 24)
	if math.Abs(got-(-1.0/8388607.0)) > tolerance {
		t.Fatalf("Normalize(0xFFFFFF, 24) = %v, want %v", got, -1.0/8388607.0)
	}

	got, _ = Normalize(0x7FFFFF, 24)
	if got < 0 {
		t.Fatalf("Normalize(0x7FFFFF, 24) = %v, want non-negative", got)
	}

	// Bits above 23 are ignored.
	got, _ = Normalize(0x12000001, 24)
	if math.Abs(got-1.0/8388607.0) > tolerance {
		t.Fatalf("Normalize(0x12000001, 24) = %v, want %v", got, 1.0/8388607.0)
	}
}

func TestNormalizeUnsupportedDepth(t *testing.T) {
	for _, depth := range []int{0, 4, 12, 20, 64} {
		if ValidBitDepth(depth) {
			t.Fatalf("ValidBitDepth(%d) = true, want false", depth)
		}

		_, err := Normalize(1, depth)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("Normalize(1, %d) error = %v, want ErrUnsupportedFormat", depth, err)
		}
	}
}
