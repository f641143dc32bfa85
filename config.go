package specbar

import (
	"github.com/noriah/specbar/dsp"
	"github.com/noriah/specbar/dsp/window"
	"github.com/noriah/specbar/fft"
	"github.com/noriah/specbar/graphic"
	"github.com/noriah/specbar/input"
	"github.com/noriah/specbar/processor"
	"github.com/pkg/errors"
)

// MaxChannelCount is the most interleaved channels a session may deliver.
const MaxChannelCount = 2

type Config struct {
	// The name of the backend from the input package
	Backend string
	// The name of the device to pull data from
	Device string
	// The rate that frames are read
	SampleRate float64
	// The number of samples per block, which is also the transform size
	SampleSize int
	// The number of interleaved channels
	Channels int
	// The wire format requested from the backend
	Format input.Format
	// The number of frames drawn per second
	FrameRate int
	// The fft engine name
	Engine string
	// The window function name
	Window string
	// Smoothing parameters
	Smoother dsp.SmootherConfig
	// Largest transform size that will be allocated
	MaxBufferSize int

	// Bar color. Black uses the terminal default.
	Color graphic.Color
	// Blank cells before every row
	Indent int
	// Leave colors to the terminal profile
	UseProfileColors bool
	// Draw full blocks only
	ASCII bool
	// Upper bounds for the frame size, 0 uses the whole display
	Width, Height int
	// Return once the input ends instead of waiting for the user to quit
	ExitOnEnd bool

	// Where frames are drawn
	Display graphic.Display
}

func NewZeroConfig() Config {
	return Config{
		Backend:       input.DefaultBackend(),
		SampleRate:    44100,
		SampleSize:    1024,
		Channels:      1,
		Format:        input.FormatS16,
		FrameRate:     60,
		Engine:        fft.DefaultEngine(),
		Window:        "hamming",
		Smoother:      dsp.DefaultSmootherConfig(),
		MaxBufferSize: processor.DefaultMaxBufferSize,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Display == nil {
		return errors.New("no display")
	}

	if cfg.Backend == "" {
		return errors.New("no backend; check list-backends")
	}

	if cfg.SampleRate < float64(cfg.SampleSize) {
		return errors.New("sample rate lower than sample size")
	}

	if cfg.SampleSize < 4 {
		return errors.New("sample size too small (4+ required)")
	}

	switch {
	case cfg.MaxBufferSize > 0 && cfg.SampleSize > cfg.MaxBufferSize:
		return errors.Errorf("sample size too large (%d max)", cfg.MaxBufferSize)

	case cfg.Channels > MaxChannelCount:
		return errors.Errorf("too many channels (%d max)", MaxChannelCount)

	case cfg.Channels < 1:
		return errors.New("too few channels (1 min)")
	}

	if cfg.FrameRate <= 0 {
		return errors.New("frame rate must be positive")
	}

	if cfg.Indent < 0 || cfg.Width < 0 || cfg.Height < 0 {
		return errors.New("indent, width and height must not be negative")
	}

	if _, err := fft.FindEngine(cfg.Engine); err != nil {
		return err
	}

	if _, err := window.Parse(cfg.Window); err != nil {
		return err
	}

	return nil
}
