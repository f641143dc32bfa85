package input

import "sync"

// SampleBuffer is the sample block shared between a session goroutine and the
// renderer. Sessions embed it and call Write; readers get a copy.
type SampleBuffer struct {
	mu      sync.Mutex
	samples []int32
	size    int
	format  Format
	paused  bool
	stopped bool
}

// NewSampleBuffer creates a buffer for blocks of size samples.
func NewSampleBuffer(size int, format Format) *SampleBuffer {
	return &SampleBuffer{
		size:   size,
		format: format,
	}
}

func (b *SampleBuffer) BufferSize() int {
	return b.size
}

func (b *SampleBuffer) Format() Format {
	return b.format
}

// Buffer returns a snapshot of the last written block.
func (b *SampleBuffer) Buffer() []int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.samples == nil {
		return nil
	}

	out := make([]int32, len(b.samples))
	copy(out, b.samples)

	return out
}

// Write replaces the current block. Writes are dropped while paused so the
// last block stays on screen.
func (b *SampleBuffer) Write(samples []int32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.paused {
		return
	}

	if len(samples) > b.size {
		samples = samples[:b.size]
	}

	if cap(b.samples) < len(samples) {
		b.samples = make([]int32, len(samples), b.size)
	}

	b.samples = b.samples[:len(samples)]
	copy(b.samples, samples)
}

// Clear zeroes the current block.
func (b *SampleBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.samples {
		b.samples[i] = 0
	}
}

func (b *SampleBuffer) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

func (b *SampleBuffer) Stopped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stopped
}

func (b *SampleBuffer) TogglePause() {
	b.mu.Lock()
	b.paused = !b.paused
	b.mu.Unlock()
}

// Stop marks the input as finished.
func (b *SampleBuffer) Stop() {
	b.mu.Lock()
	b.stopped = true
	b.mu.Unlock()
}
