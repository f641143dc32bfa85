package input

import (
	"encoding/binary"
	"math"
)

// DecodePCM decodes little-endian raw samples of format f from raw into dst
// and returns the number of samples written. Trailing partial samples are
// ignored.
//
// U8 and S24 samples are kept in their raw form; the normalizer handles the
// offset and sign extension. F32 samples are scaled to the int32 range.
func DecodePCM(dst []int32, raw []byte, f Format) int {
	width := f.FrameBytes()
	if width == 0 {
		return 0
	}

	n := len(raw) / width
	if n > len(dst) {
		n = len(dst)
	}

	for i := 0; i < n; i++ {
		b := raw[i*width : (i+1)*width]

		switch f {
		case FormatU8:
			dst[i] = int32(b[0])
		case FormatS16:
			dst[i] = int32(int16(binary.LittleEndian.Uint16(b)))
		case FormatS24:
			dst[i] = int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		case FormatS32:
			dst[i] = int32(binary.LittleEndian.Uint32(b))
		case FormatF32:
			dst[i] = floatToInt32(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		}
	}

	return n
}

func floatToInt32(v float32) int32 {
	switch {
	case v != v:
		return 0
	case v >= 1:
		return math.MaxInt32
	case v <= -1:
		return -math.MaxInt32
	default:
		return int32(float64(v) * math.MaxInt32)
	}
}
