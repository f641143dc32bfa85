// Package dsp provides the numeric stages of the spectrum pipeline: sample
// normalization, magnitude extraction and temporal smoothing.
package dsp

import "github.com/pkg/errors"

// ErrUnsupportedFormat is returned for bit depths the normalizer cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported sample format")

// Divisors for each supported bit depth.
const (
	scale8  = 127.0
	scale16 = 32768.0
	scale24 = 8388607.0
	scale32 = 2147483647.0
)

// ValidBitDepth reports whether Normalize can decode samples of depth bits.
func ValidBitDepth(depth int) bool {
	switch depth {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

// Normalize decodes one raw sample of the given bit depth into an amplitude
// in roughly [-1, 1].
//
// 8-bit samples are unsigned and centered on 128. 24-bit samples only use the
// low 24 bits and are sign extended from bit 23, so both packed and already
// extended values decode the same way.
func Normalize(sample int32, depth int) (float64, error) {
	switch depth {
	case 8:
		return (float64(sample) - 128) / scale8, nil

	case 16:
		return float64(sample) / scale16, nil

	case 24:
		v := sample & 0xFFFFFF
		if v&0x800000 != 0 {
			v |= ^0xFFFFFF
		}
		return float64(v) / scale24, nil

	case 32:
		return float64(sample) / scale32, nil

	default:
		return 0, errors.Wrapf(ErrUnsupportedFormat, "bit depth %d", depth)
	}
}
