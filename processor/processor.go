// Package processor turns blocks of raw samples into drawn spectrum frames.
package processor

import (
	"log"
	"sync"

	"github.com/noriah/specbar/dsp"
	"github.com/noriah/specbar/dsp/window"
	"github.com/noriah/specbar/fft"
	"github.com/noriah/specbar/graphic"
	"github.com/noriah/specbar/input"
	"github.com/pkg/errors"
)

// DefaultMaxBufferSize bounds the transform size a source may ask for.
const DefaultMaxBufferSize = 4800

type Config struct {
	Source   input.Source     // sample blocks
	State    input.State      // pause and stop flags, may be nil
	Terminal graphic.Terminal // output
	Engine   fft.Engine       // transform engine
	Window   window.Function  // window applied before the transform
	Smoother dsp.SmootherConfig

	// Unicode enables partial block glyphs. It is probed once by the caller.
	Unicode bool
	// MaxBufferSize is the largest buffer size that will be allocated.
	MaxBufferSize int
}

// Visualizer holds everything that lives from one frame to the next.
type Visualizer struct {
	mu sync.Mutex

	src   input.Source
	state input.State
	eng   fft.Engine
	wndwr window.Function
	smth  *dsp.Smoother
	rndr  *graphic.Renderer
	limit int

	bufs buffers
	mags []float64
}

func New(cfg Config) (*Visualizer, error) {
	if cfg.Source == nil {
		return nil, errors.New("no input source")
	}

	if cfg.Terminal == nil {
		return nil, errors.New("no terminal")
	}

	if cfg.Engine == nil {
		return nil, errors.New("no fft engine")
	}

	if cfg.Window == nil {
		cfg.Window = window.Hamming
	}

	if cfg.MaxBufferSize <= 0 {
		cfg.MaxBufferSize = DefaultMaxBufferSize
	}

	return &Visualizer{
		src:   cfg.Source,
		state: cfg.State,
		eng:   cfg.Engine,
		wndwr: cfg.Window,
		smth:  dsp.NewSmoother(cfg.Smoother),
		rndr:  graphic.NewRenderer(cfg.Terminal, cfg.Unicode),
		limit: cfg.MaxBufferSize,
	}, nil
}

// RenderFrame computes and draws one frame of height rows by width columns.
// The first row is taken by the leading line feed, and every bar is two
// columns wide.
func (vis *Visualizer) RenderFrame(height, width int, color graphic.Color, indent int, useProfileColors bool) error {
	vis.mu.Lock()
	defer vis.mu.Unlock()

	rows := height - 1
	bars := width / 2

	if rows <= 0 || bars <= 0 {
		return errors.Wrapf(ErrInvalidGeometry, "%dx%d", width, height)
	}

	size := vis.src.BufferSize()
	if size <= 0 {
		return errors.Wrapf(ErrInvalidGeometry, "buffer size %d", size)
	}

	if size != vis.bufs.size {
		if err := vis.bufs.alloc(size, vis.limit); err != nil {
			return err
		}

		vis.smth.Reset()

		log.Printf("transform buffers resized to %d", size)
	}

	if cap(vis.mags) < bars {
		vis.mags = make([]float64, bars)
	}
	vis.mags = vis.mags[:bars]

	frame := graphic.Frame{
		Rows:             rows,
		Bars:             vis.mags,
		Color:            color,
		Indent:           indent,
		UseProfileColors: useProfileColors,
	}

	if vis.frozen() {
		frame.Frozen = true
		return vis.rndr.Draw(frame)
	}

	if err := vis.process(rows); err != nil {
		return err
	}

	return vis.rndr.Draw(frame)
}

// process fills vis.mags with smoothed bar heights for the current block.
func (vis *Visualizer) process(rows int) error {
	samples := vis.src.Buffer()
	if len(samples) == 0 {
		return ErrUnavailableInput
	}

	format := vis.src.Format()
	depth := format.BitDepth()

	if !dsp.ValidBitDepth(depth) {
		return errors.Wrapf(ErrUnsupportedFormat, "format %s", format)
	}

	if err := vis.bufs.load(samples, depth, vis.wndwr); err != nil {
		return err
	}

	if err := vis.bufs.transform(vis.eng); err != nil {
		return err
	}

	dsp.Magnitudes(vis.mags, vis.bufs.out)
	vis.smth.Smooth(vis.mags, rows)

	return nil
}

func (vis *Visualizer) frozen() bool {
	return vis.state != nil && (vis.state.Paused() || vis.state.Stopped())
}

// Magnitudes returns a copy of the bar heights drawn in the last frame.
func (vis *Visualizer) Magnitudes() []float64 {
	vis.mu.Lock()
	defer vis.mu.Unlock()

	out := make([]float64, len(vis.mags))
	copy(out, vis.mags)

	return out
}

// BufferSize returns the size of the allocated transform buffers, or 0.
func (vis *Visualizer) BufferSize() int {
	vis.mu.Lock()
	defer vis.mu.Unlock()
	return vis.bufs.size
}

// RunningMax returns the smoother's normalization peak.
func (vis *Visualizer) RunningMax() float64 {
	vis.mu.Lock()
	defer vis.mu.Unlock()
	return vis.smth.RunningMax()
}

// Release frees the transform buffers. The next frame allocates them again.
func (vis *Visualizer) Release() {
	vis.mu.Lock()
	defer vis.mu.Unlock()
	vis.bufs.release()
}
