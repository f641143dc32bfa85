// Package synth generates test tones, for demos and machines without a
// capture device.
package synth

import (
	"context"
	"math"

	"github.com/noriah/specbar/input"
	"github.com/noriah/specbar/input/common/timer"
	"github.com/pkg/errors"
)

func init() {
	input.RegisterBackend("synth", Backend{})
}

type Backend struct{}

func (b Backend) Init() error {
	return nil
}

func (b Backend) Close() error {
	return nil
}

func (b Backend) Devices() ([]input.Device, error) {
	return []input.Device{Chord, Sweep}, nil
}

func (b Backend) DefaultDevice() (input.Device, error) {
	return Chord, nil
}

func (b Backend) Start(cfg input.SessionConfig) (input.Session, error) {
	wave, ok := cfg.Device.(Wave)
	if !ok {
		return nil, errors.Errorf("invalid device type %T", cfg.Device)
	}

	if cfg.Format.BitDepth() == 0 {
		return nil, errors.Errorf("synth cannot generate %s samples", cfg.Format)
	}

	return NewSession(wave, cfg), nil
}

// Wave is a generated signal.
type Wave string

const (
	// Chord is an A major chord with a low drone.
	Chord Wave = "chord"
	// Sweep is a tone gliding up over the audible range and back.
	Sweep Wave = "sweep"
)

func (w Wave) String() string {
	return string(w)
}

var chordPartials = []struct{ freq, amp float64 }{
	{55, 0.30},
	{220, 0.20},
	{277.18, 0.15},
	{329.63, 0.15},
	{880, 0.08},
	{3520, 0.04},
}

// Session produces one block of the wave per block period.
type Session struct {
	*input.SampleBuffer

	cfg   input.SessionConfig
	wave  Wave
	frame int
	block []int32
}

func NewSession(wave Wave, cfg input.SessionConfig) *Session {
	if cfg.Channels < 1 {
		cfg.Channels = 1
	}

	return &Session{
		SampleBuffer: input.NewSampleBuffer(cfg.SampleSize, cfg.Format),
		cfg:          cfg,
		wave:         wave,
		block:        make([]int32, cfg.SampleSize),
	}
}

func (s *Session) Start(ctx context.Context) error {
	defer s.Stop()
	return timer.Process(ctx, s.cfg, s, s.next)
}

func (s *Session) next() error {
	s.Fill(s.block)
	s.Write(s.block)
	return nil
}

// Fill writes the next len(dst) interleaved samples into dst.
func (s *Session) Fill(dst []int32) {
	for i := range dst {
		t := float64(s.frame) / s.cfg.SampleRate
		dst[i] = Encode(s.sample(t), s.cfg.Format)

		if (i+1)%s.cfg.Channels == 0 {
			s.frame++
		}
	}
}

func (s *Session) sample(t float64) float64 {
	switch s.wave {
	case Sweep:
		// 20 second period, 40 Hz to ~10 kHz on a log scale.
		pos := math.Abs(math.Mod(t/10, 2) - 1)
		freq := 40 * math.Pow(2, 8*(1-pos))
		return 0.5 * math.Sin(2*math.Pi*freq*t)

	default:
		var v float64
		for _, p := range chordPartials {
			v += p.amp * math.Sin(2*math.Pi*p.freq*t)
		}
		return v
	}
}

// Encode converts an amplitude in [-1, 1] to the raw sample of format f.
func Encode(v float64, f input.Format) int32 {
	v = math.Max(-1, math.Min(1, v))

	switch f {
	case input.FormatU8:
		return int32(128 + math.Round(v*127))
	case input.FormatS16:
		return int32(math.Round(v * 32767))
	case input.FormatS24:
		return int32(math.Round(v * 8388607))
	default:
		return int32(math.Round(v * math.MaxInt32))
	}
}
