package fft

import (
	"github.com/mjibson/go-dsp/fft"
)

const godspName = "go-dsp"

func init() {
	RegisterEngine(GoDSP{})
}

// GoDSP runs transforms with go-dsp, which handles any length through
// Bluestein's algorithm.
type GoDSP struct{}

func (GoDSP) Name() string { return godspName }

func (GoDSP) Prepare(size int) (Transformer, error) {
	return godspPlan{}, nil
}

type godspPlan struct{}

func (godspPlan) Transform(dst, src []complex128) error {
	copy(dst, fft.FFT(src))
	return nil
}
