// Package specbar draws a live frequency spectrum of an audio input in a
// terminal.
package specbar

import (
	"context"
	"log"
	"time"

	"github.com/noriah/specbar/dsp/window"
	"github.com/noriah/specbar/fft"
	"github.com/noriah/specbar/graphic"
	"github.com/noriah/specbar/input"
	"github.com/noriah/specbar/processor"
	"github.com/pkg/errors"
)

// BarWriter is implemented by displays that also want the bar heights of
// every drawn frame.
type BarWriter interface {
	WriteBars(bars []float64, rows int) error
}

// Run draws frames from the configured input until ctx is done or the user
// quits.
func Run(ctx context.Context, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	// INPUT SETUP

	backend, err := input.InitBackend(cfg.Backend)
	if err != nil {
		return err
	}
	defer backend.Close()

	sessConfig := input.SessionConfig{
		SampleRate: cfg.SampleRate,
		SampleSize: cfg.SampleSize,
		Channels:   cfg.Channels,
		Format:     cfg.Format,
	}

	if sessConfig.Device, err = input.GetDevice(backend, cfg.Device); err != nil {
		return err
	}

	session, err := backend.Start(sessConfig)
	if err != nil {
		return errors.Wrap(err, "failed to start the input backend")
	}

	// PROCESSOR SETUP

	engine, err := fft.FindEngine(cfg.Engine)
	if err != nil {
		return err
	}

	wf, err := window.Parse(cfg.Window)
	if err != nil {
		return err
	}

	// DISPLAY SETUP

	display := cfg.Display

	if err := display.Init(); err != nil {
		return errors.Wrap(err, "failed to init display")
	}
	defer display.Close()

	vis, err := processor.New(processor.Config{
		Source:        session,
		State:         session,
		Terminal:      display,
		Engine:        engine,
		Window:        wf,
		Smoother:      cfg.Smoother,
		Unicode:       !cfg.ASCII && graphic.UnicodeSupported(),
		MaxBufferSize: cfg.MaxBufferSize,
	})
	if err != nil {
		return err
	}
	defer vis.Release()

	log.Printf("reading %s from %s/%s, fft %s, window %s",
		cfg.Format, cfg.Backend, sessConfig.Device, engine.Name(), cfg.Window)

	// Root Context
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctx = display.Start(ctx, session)

	sessErr := make(chan error, 1)
	go func() {
		sessErr <- session.Start(ctx)
	}()

	bars, _ := display.(BarWriter)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer ticker.Stop()

	var lastSkip string

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-sessErr:
			if ctx.Err() != nil {
				return nil
			}

			if err != nil {
				return errors.Wrap(err, "input session failed")
			}

			log.Println("input ended")

			if cfg.ExitOnEnd {
				return nil
			}

			// Keep drawing the frozen frame until the user quits.
			sessErr = nil

		case <-ticker.C:
			width, height := frameSize(display, cfg)

			err := vis.RenderFrame(height, width, cfg.Color, cfg.Indent, cfg.UseProfileColors)
			if err != nil {
				if msg := err.Error(); msg != lastSkip {
					log.Printf("frame skipped: %v", err)
					lastSkip = msg
				}
				continue
			}

			lastSkip = ""

			if bars != nil {
				if err := bars.WriteBars(vis.Magnitudes(), height-1); err != nil {
					return errors.Wrap(err, "failed to write bars")
				}
			}
		}
	}
}

// frameSize returns the display size, bounded by the configured width and
// height.
func frameSize(d graphic.Display, cfg *Config) (int, int) {
	width, height := d.Size()

	if cfg.Width > 0 && cfg.Width < width {
		width = cfg.Width
	}

	if cfg.Height > 0 && cfg.Height < height {
		height = cfg.Height
	}

	return width, height
}
