// Package timer paces sources that can produce audio faster than real time,
// such as files and generators, so that blocks arrive at the rate they would
// from a live device.
package timer

import (
	"context"
	"io"
	"time"

	"github.com/noriah/specbar/input"
)

// Process calls step once per block period until step returns an error or ctx
// is done. Ticks are skipped while state is paused. A step returning io.EOF
// ends the run without an error.
func Process(ctx context.Context, cfg input.SessionConfig, state input.State, step func() error) error {
	// Calculate the theoretical tick duration to satisfy the requested sampling
	// rate without falling behind.
	rate := time.Duration(float64(time.Second) / cfg.BlockRate())
	if rate <= 0 {
		rate = time.Millisecond
	}

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		if !state.Paused() {
			if err := step(); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
