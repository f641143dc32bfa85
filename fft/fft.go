// Package fft provides generic abstractions around fourier transformers.
package fft

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrSizeMismatch is returned when the buffers handed to a plan do not match
// its size.
var ErrSizeMismatch = errors.New("fft buffer size mismatch")

// Transformer runs a forward complex transform of src into dst. Both slices
// have the same length.
type Transformer interface {
	Transform(dst, src []complex128) error
}

// Engine prepares transformers for a given size.
type Engine interface {
	Name() string
	Prepare(size int) (Transformer, error)
}

// Plan holds the transform configuration for one buffer size. A plan lives for
// a single frame.
type Plan struct {
	size int
	tr   Transformer
}

// NewPlan prepares a plan for size points on engine e.
func NewPlan(e Engine, size int) (*Plan, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid fft size %d", size)
	}

	tr, err := e.Prepare(size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to prepare %s plan", e.Name())
	}

	return &Plan{size: size, tr: tr}, nil
}

// Size returns the number of points the plan was built for.
func (p *Plan) Size() int {
	return p.size
}

// Execute runs the plan
func (p *Plan) Execute(dst, src []complex128) error {
	if p.tr == nil {
		return errors.New("fft plan used after release")
	}

	if len(src) != p.size || len(dst) != p.size {
		return errors.Wrapf(ErrSizeMismatch, "plan %d, src %d, dst %d",
			p.size, len(src), len(dst))
	}

	return p.tr.Transform(dst, src)
}

// Release drops the transform configuration.
func (p *Plan) Release() {
	if r, ok := p.tr.(interface{ release() }); ok {
		r.release()
	}

	p.tr = nil
}

var engines = map[string]Engine{}

// RegisterEngine makes an engine available by name. This function is not
// thread-safe, and most packages should call it on init().
func RegisterEngine(e Engine) {
	engines[e.Name()] = e
}

// FindEngine returns the named engine.
func FindEngine(name string) (Engine, error) {
	e, ok := engines[name]
	if !ok {
		return nil, errors.Errorf("fft engine not found: %q; check list-engines", name)
	}

	return e, nil
}

// EngineNames returns all registered engine names.
func EngineNames() []string {
	out := make([]string, 0, len(engines))
	for name := range engines {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// DefaultEngine returns the preferred engine name. FFTW wins when it was
// compiled in.
func DefaultEngine() string {
	if _, ok := engines[fftwName]; ok {
		return fftwName
	}

	return gonumName
}
