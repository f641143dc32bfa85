package main

import (
	"os"
	"path/filepath"

	"github.com/noriah/specbar"
	"github.com/noriah/specbar/graphic"
	"github.com/noriah/specbar/input"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Display modes.
const (
	displayScreen = "screen"
	displayInline = "inline"
	displayRaw    = "raw"
)

// config is the command line and config file view of specbar.Config.
type config struct {
	// Backend is the backend name from list-backends
	Backend string `yaml:"backend"`
	// Device is the device name from list-devices, or a file path for wav
	Device string `yaml:"device"`
	// SampleRate is the rate at which frames are read
	SampleRate float64 `yaml:"sample_rate"`
	// SampleSize is the number of samples per block and the fft size
	SampleSize int `yaml:"sample_size"`
	// Channels is the number of interleaved channels
	Channels int `yaml:"channels"`
	// Format is the sample format requested from the backend
	Format string `yaml:"format"`
	// FrameRate is the number of frames to draw every second
	FrameRate int `yaml:"frame_rate"`
	// Engine is the fft engine from list-engines
	Engine string `yaml:"engine"`
	// Window is the window function from list-windows
	Window string `yaml:"window"`
	// Alpha is the weight of a new frame peak in the running max
	Alpha float64 `yaml:"alpha"`
	// Decay is the fraction of a bar kept per frame
	Decay float64 `yaml:"decay"`
	// Exponent is the curve applied to bar heights
	Exponent float64 `yaml:"exponent"`
	// Color is the bar color as #rrggbb, empty for the terminal default
	Color string `yaml:"color"`
	// Indent is the number of blank cells before each row
	Indent int `yaml:"indent"`
	// ProfileColors leaves coloring to the terminal
	ProfileColors bool `yaml:"profile_colors"`
	// ASCII disables partial blocks
	ASCII bool `yaml:"ascii"`
	// Width and Height bound the frame, 0 uses the whole terminal
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Display is one of screen, inline or raw
	Display string `yaml:"display"`
	// Bars and Rows size the raw output
	Bars int `yaml:"bars"`
	Rows int `yaml:"rows"`
	// NoKeys stops the inline display from reading keys
	NoKeys bool `yaml:"no_keys"`
	// LogFile receives diagnostics while drawing
	LogFile string `yaml:"log"`
}

// newZeroConfig returns a zero config
// it is the "default"
func newZeroConfig() config {
	def := specbar.NewZeroConfig()

	return config{
		Backend:    def.Backend,
		SampleRate: def.SampleRate,
		SampleSize: def.SampleSize,
		Channels:   def.Channels,
		Format:     def.Format.String(),
		FrameRate:  def.FrameRate,
		Engine:     def.Engine,
		Window:     def.Window,
		Alpha:      def.Smoother.Alpha,
		Decay:      def.Smoother.Decay,
		Exponent:   def.Smoother.Exponent,
		Display:    displayScreen,
		Bars:       32,
		Rows:       16,
	}
}

// configPath returns the config file location and whether it was asked for
// explicitly.
func configPath() (string, bool) {
	if path := os.Getenv("SPECBAR_CONFIG"); path != "" {
		return path, true
	}

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, "specbar", "config.yaml"), false
}

// loadConfigFile reads path over cfg. A missing file is only an error when
// it was asked for.
func loadConfigFile(cfg *config, path string, required bool) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}

	return nil
}

func (cfg *config) validate() error {
	switch cfg.Display {
	case displayScreen, displayInline:
	case displayRaw:
		if cfg.Bars < 1 || cfg.Rows < 1 {
			return errors.New("raw output needs at least one bar and one row")
		}
	default:
		return errors.Errorf("unknown display %q (screen, inline or raw)", cfg.Display)
	}

	if _, err := input.ParseFormat(cfg.Format); err != nil {
		return err
	}

	if _, err := graphic.ParseColor(cfg.Color); err != nil {
		return err
	}

	return nil
}

// build turns cfg into the run configuration, creating the display.
func (cfg *config) build() (specbar.Config, error) {
	if err := cfg.validate(); err != nil {
		return specbar.Config{}, err
	}

	out := specbar.NewZeroConfig()

	out.Backend = cfg.Backend
	out.Device = cfg.Device
	out.SampleRate = cfg.SampleRate
	out.SampleSize = cfg.SampleSize
	out.Channels = cfg.Channels
	out.FrameRate = cfg.FrameRate
	out.Engine = cfg.Engine
	out.Window = cfg.Window
	out.Smoother.Alpha = cfg.Alpha
	out.Smoother.Decay = cfg.Decay
	out.Smoother.Exponent = cfg.Exponent
	out.Indent = cfg.Indent
	out.UseProfileColors = cfg.ProfileColors
	out.ASCII = cfg.ASCII
	out.Width = cfg.Width
	out.Height = cfg.Height

	out.Format, _ = input.ParseFormat(cfg.Format)
	out.Color, _ = graphic.ParseColor(cfg.Color)

	switch cfg.Display {
	case displayRaw:
		out.Display = specbar.NewRawOutput(os.Stdout, cfg.Bars, cfg.Rows)
		out.ExitOnEnd = true

	case displayInline:
		// Keys cannot be read from stdin when it carries the audio.
		keys := !cfg.NoKeys && cfg.Backend != "stdin"
		out.Display = graphic.NewInline(keys)

	default:
		out.Display = &graphic.Screen{}
	}

	return out, nil
}
