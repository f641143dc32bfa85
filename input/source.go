package input

import "context"

// Source is a block of raw audio samples.
type Source interface {
	// BufferSize is the transform size for this source.
	BufferSize() int
	// Buffer returns the most recent block. It may hold fewer than
	// BufferSize samples, and is nil until the source has produced any.
	Buffer() []int32
	Format() Format
}

// State is the playback state of a source.
type State interface {
	Paused() bool
	Stopped() bool
}

// Session is a running input.
type Session interface {
	Source
	State

	// Start fills the buffer until ctx is done, the input ends or an error
	// occurs. Reaching the end of the input is not an error.
	Start(ctx context.Context) error
	TogglePause()
}

// Device is an input device a backend can open.
type Device interface {
	String() string
}

// SessionConfig is the configuration for an input session.
type SessionConfig struct {
	Device     Device  // device to open
	SampleRate float64 // frames per second
	SampleSize int     // samples per block
	Channels   int     // interleaved channels per frame
	Format     Format  // wire format
}

// BlockRate returns the number of blocks per second the session produces.
func (cfg SessionConfig) BlockRate() float64 {
	channels := cfg.Channels
	if channels < 1 {
		channels = 1
	}

	return cfg.SampleRate * float64(channels) / float64(cfg.SampleSize)
}
