package dsp

import "math"

// Magnitudes fills dst with the magnitude of each frequency bin.
//
// Only the first half of the spectrum is used since the input is real and the
// upper half mirrors it. Entries of dst past that half are zeroed.
func Magnitudes(dst []float64, spectrum []complex128) {
	half := len(spectrum) / 2

	for idx := range dst {
		if idx >= half {
			dst[idx] = 0.0
			continue
		}

		c := spectrum[idx]
		dst[idx] = math.Sqrt(real(c)*real(c) + imag(c)*imag(c))
	}
}
