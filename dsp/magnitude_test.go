package dsp

import (
	"math"
	"testing"
)

func TestMagnitudes(t *testing.T) {
	spectrum := []complex128{
		complex(3, 4),
		complex(0, -2),
		complex(-1, 0),
		complex(9, 9),
	}

	dst := []float64{-1, -1, -1, -1}
	Magnitudes(dst, spectrum)

	want := []float64{5, 2, 0, 0}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > tolerance {
			t.Fatalf("Magnitudes()[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestMagnitudesFewerBars(t *testing.T) {
	spectrum := make([]complex128, 16)
	for i := range spectrum {
		spectrum[i] = complex(float64(i), 0)
	}

	dst := make([]float64, 3)
	Magnitudes(dst, spectrum)

	for i, v := range dst {
		if v != float64(i) {
			t.Fatalf("Magnitudes()[%d] = %v, want %v", i, v, float64(i))
		}
	}
}

func TestMagnitudesEmptySpectrum(t *testing.T) {
	dst := []float64{1, 2, 3}
	Magnitudes(dst, nil)

	for i, v := range dst {
		if v != 0 {
			t.Fatalf("Magnitudes()[%d] = %v, want 0", i, v)
		}
	}
}
