package processor

import (
	"github.com/noriah/specbar/dsp"
	"github.com/noriah/specbar/dsp/window"
	"github.com/noriah/specbar/fft"
	"github.com/pkg/errors"
)

// buffers is the complex input/output pair and real scratch for one buffer
// size. A zero size means nothing is allocated.
type buffers struct {
	size int
	in   []complex128
	out  []complex128
	real []float64
}

// alloc replaces the buffers with a pair of size points. On failure the
// current buffers are kept as they are, and since their size still differs
// the next frame tries again.
func (b *buffers) alloc(size, limit int) error {
	if limit > 0 && size > limit {
		return errors.Wrapf(ErrAllocation, "buffer size %d over limit %d", size, limit)
	}

	b.release()

	b.in = make([]complex128, size)
	b.out = make([]complex128, size)
	b.real = make([]float64, size)
	b.size = size

	return nil
}

func (b *buffers) release() {
	b.size = 0
	b.in = nil
	b.out = nil
	b.real = nil
}

// load normalizes samples into the complex input. Only the first size samples
// are used; the rest of the input is zero padding. The window is applied to
// the populated range only.
func (b *buffers) load(samples []int32, depth int, wf window.Function) error {
	m := len(samples)
	if m > b.size {
		m = b.size
	}

	populated := b.real[:m]

	for i, s := range samples[:m] {
		v, err := dsp.Normalize(s, depth)
		if err != nil {
			return err
		}
		populated[i] = v
	}

	if wf != nil {
		wf(populated)
	}

	for i, v := range populated {
		b.in[i] = complex(v, 0)
	}

	for i := m; i < b.size; i++ {
		b.real[i] = 0
		b.in[i] = 0
	}

	return nil
}

// transform runs one forward transform of the loaded input on engine e. The
// plan only lives for this call.
func (b *buffers) transform(e fft.Engine) error {
	plan, err := fft.NewPlan(e, b.size)
	if err != nil {
		return errors.Wrapf(ErrTransform, "%v", err)
	}
	defer plan.Release()

	if err := plan.Execute(b.out, b.in); err != nil {
		return errors.Wrapf(ErrTransform, "%s: %v", e.Name(), err)
	}

	return nil
}
