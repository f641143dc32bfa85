//go:build cgo && fftw

package fft

// The only binding included is the one specbar needs: a one dimensional
// complex to complex forward plan. Build with `-tags fftw`.

// #cgo pkg-config: fftw3
// #include <fftw3.h>
import "C"

import (
	"unsafe"
)

func init() {
	RegisterEngine(FFTW{})
}

// FFTW runs transforms with libfftw3.
type FFTW struct{}

func (FFTW) Name() string { return fftwName }

func (FFTW) Prepare(size int) (Transformer, error) {
	return &fftwPlan{size: size}, nil
}

type fftwPlan struct {
	size int
}

// Transform plans against the given buffers, runs it and destroys the C plan
// before returning, so no Go pointer is kept on the C side.
func (p *fftwPlan) Transform(dst, src []complex128) error {
	cPlan := C.fftw_plan_dft_1d(
		C.int(p.size),
		(*C.fftw_complex)(unsafe.Pointer(&src[0])),
		(*C.fftw_complex)(unsafe.Pointer(&dst[0])),
		C.FFTW_FORWARD,
		C.FFTW_ESTIMATE,
	)

	C.fftw_execute(cPlan)
	C.fftw_destroy_plan(cPlan)

	return nil
}
