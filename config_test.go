package specbar

import (
	"io"
	"strings"
	"testing"

	_ "github.com/noriah/specbar/input/synth"
)

func validConfig() Config {
	cfg := NewZeroConfig()
	cfg.Backend = "synth"
	cfg.Display = NewRawOutput(io.Discard, 8, 10)
	return cfg
}

func TestZeroConfigIsValid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"no display", func(c *Config) { c.Display = nil }, "no display"},
		{"no backend", func(c *Config) { c.Backend = "" }, "no backend"},
		{"tiny sample size", func(c *Config) { c.SampleSize = 2 }, "too small"},
		{"huge sample size", func(c *Config) { c.SampleSize = 8192 }, "too large"},
		{"rate below size", func(c *Config) { c.SampleRate = 100 }, "sample rate lower"},
		{"too many channels", func(c *Config) { c.Channels = 3 }, "too many channels"},
		{"no channels", func(c *Config) { c.Channels = 0 }, "too few channels"},
		{"no frame rate", func(c *Config) { c.FrameRate = 0 }, "frame rate"},
		{"negative indent", func(c *Config) { c.Indent = -1 }, "negative"},
		{"unknown engine", func(c *Config) { c.Engine = "nope" }, "engine not found"},
		{"unknown window", func(c *Config) { c.Window = "nope" }, "window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}

			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
